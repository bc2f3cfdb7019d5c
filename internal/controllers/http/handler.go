package http

import (
	"net/http"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth      *services.AuthService
	Profile   *services.ProfileService
	Products  *services.ProductService
	Factories *services.FactoryService
	Orders    *services.OrderService
	Vendors   *services.VendorService
	Stats     *services.StatsService
	Settings  *services.SettingsService
}

type Handler struct {
	svc    Services
	tokens *auth.Tokens
}

func NewHandler(svc Services, tokens *auth.Tokens) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	optional := h.authenticate(false)
	required := h.authenticate(true)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	a := api.Group("/auth")
	a.POST("/register", h.Register)
	a.POST("/login", h.Login)
	a.GET("/me", required, h.Me)
	a.PATCH("/update-profile", required, h.UpdateProfile)
	a.PATCH("/me/shipping-method", required, h.UpdateShippingMethod)

	adm := api.Group("/admin")
	adm.GET("/check", h.AdminCheck)
	adm.POST("/register", h.RegisterAdmin)
	adm.POST("/login", h.AdminLogin)
	adm.POST("/promote", h.PromoteAdmin)
	adm.GET("/settings", h.GetSettings)
	adm.PATCH("/settings", required, h.UpdateSettings)
	adm.GET("/vendors", required, h.ListVendors)
	adm.GET("/vendors/:vendorId", required, h.GetVendor)
	adm.PATCH("/vendors/:vendorId/approve", required, h.ApproveVendor)
	adm.PATCH("/vendors/:vendorId/reject", required, h.RejectVendor)

	p := api.Group("/products")
	p.GET("", h.ListProducts)
	p.GET("/search", h.SearchProducts)
	p.GET("/me/mine", required, h.MyProducts)
	p.GET("/:id", optional, h.GetProduct)
	p.POST("", required, h.CreateProduct)
	p.PATCH("/:id", required, h.UpdateProduct)
	p.DELETE("/:id", required, h.DeleteProduct)

	f := api.Group("/factories")
	f.GET("", h.ListFactories)
	f.GET("/me/mine", required, h.MyFactories)
	f.POST("", required, h.CreateFactory)
	f.PATCH("/:id", required, h.UpdateFactory)
	f.DELETE("/:id", required, h.DeleteFactory)

	b := api.Group("/brands")
	b.GET("", h.ListBrands)
	b.GET("/me", required, h.MyBrand)
	b.PATCH("/me", required, h.UpdateMyBrand)

	o := api.Group("/orders", required)
	o.POST("", h.CreateOrder)
	o.GET("/my-orders", h.MyOrders)
	o.GET("/:id", h.GetOrder)

	api.GET("/stats", required, h.PlatformStats)
	api.GET("/vendors/:vendorId/stats", required, h.VendorStats)
	api.GET("/notifications", required, h.Notifications)
}

// pathID parses the named path parameter. Malformed ids read as not found.
func pathID(c *gin.Context, name string, notFound *domain.Error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		fail(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}
