package http

import (
	"net/http"

	"marketplace/internal/domain"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		Role:     req.Role,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"token": res.Token, "user": res.User})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Auth.Login(c.Request.Context(), services.LoginInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}

func (h *Handler) Me(c *gin.Context) {
	prof, err := h.svc.Profile.Me(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": prof})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	prof, err := h.svc.Profile.UpdateProfile(c.Request.Context(), principal(c), domain.ProfileUpdate(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": prof})
}

func (h *Handler) UpdateShippingMethod(c *gin.Context) {
	var req ShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	method, err := h.svc.Profile.UpdateShippingMethod(c.Request.Context(), principal(c), req.ShippingMethod)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"shippingMethod": method})
}

func (h *Handler) AdminCheck(c *gin.Context) {
	exists, err := h.svc.Auth.AdminExists(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"adminExists": exists})
}

func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Auth.RegisterAdmin(c.Request.Context(), services.RegisterAdminInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"token": res.Token, "user": res.User})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Auth.AdminLogin(c.Request.Context(), services.LoginInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}

func (h *Handler) PromoteAdmin(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.svc.Auth.PromoteToAdmin(c.Request.Context(), req.Email, req.SecretCode)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.svc.Profile.Brands(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"brands": brands})
}

func (h *Handler) MyBrand(c *gin.Context) {
	brand, err := h.svc.Profile.MyBrand(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"brand": brand})
}

func (h *Handler) UpdateMyBrand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	brand, err := h.svc.Profile.UpdateMyBrand(c.Request.Context(), principal(c), req.Name, req.Logo)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"brand": brand})
}

func (h *Handler) Notifications(c *gin.Context) {
	items, err := h.svc.Profile.Notifications(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"notifications": items})
}
