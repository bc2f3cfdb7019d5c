package http

import (
	"net/http"
	"strings"

	"marketplace/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.svc.Products.ListPublic(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": items})
}

func (h *Handler) SearchProducts(c *gin.Context) {
	f := domain.ProductFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: domain.Category(c.Query("category")),
	}
	for param, dst := range map[string]**decimal.Decimal{"minPrice": &f.MinPrice, "maxPrice": &f.MaxPrice} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fail(c, domain.ErrInvalidInput.WithMessage("%s must be a number", param))
			return
		}
		*dst = &d
	}

	items, err := h.svc.Products.Search(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": items})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, valid := pathID(c, "id", domain.ErrNotFound)
	if !valid {
		return
	}
	prod, err := h.svc.Products.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"product": prod})
}

func (h *Handler) MyProducts(c *gin.Context) {
	items, err := h.svc.Products.ListMine(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": items})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	prod, err := h.svc.Products.Create(c.Request.Context(), principal(c), domain.ProductInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"product": prod})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, valid := pathID(c, "id", domain.ErrNotFoundOrNotOwned)
	if !valid {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	prod, err := h.svc.Products.Update(c.Request.Context(), principal(c), id, domain.ProductInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"product": prod})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, valid := pathID(c, "id", domain.ErrNotFoundOrNotOwned)
	if !valid {
		return
	}
	if err := h.svc.Products.Delete(c.Request.Context(), principal(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *Handler) ListFactories(c *gin.Context) {
	items, err := h.svc.Factories.ListPublic(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"factories": items})
}

func (h *Handler) MyFactories(c *gin.Context) {
	items, err := h.svc.Factories.ListMine(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"factories": items})
}

func (h *Handler) CreateFactory(c *gin.Context) {
	var req FactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	f, err := h.svc.Factories.Create(c.Request.Context(), principal(c), domain.FactoryInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"factory": f})
}

func (h *Handler) UpdateFactory(c *gin.Context) {
	id, valid := pathID(c, "id", domain.ErrNotFoundOrNotOwned)
	if !valid {
		return
	}
	var req FactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	f, err := h.svc.Factories.Update(c.Request.Context(), principal(c), id, domain.FactoryInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"factory": f})
}

func (h *Handler) DeleteFactory(c *gin.Context) {
	id, valid := pathID(c, "id", domain.ErrNotFoundOrNotOwned)
	if !valid {
		return
	}
	if err := h.svc.Factories.Delete(c.Request.Context(), principal(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "factory deleted"})
}
