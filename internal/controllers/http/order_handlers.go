package http

import (
	"net/http"

	"marketplace/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.svc.Orders.CreateOrder(c.Request.Context(), principal(c), req.toDomain())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) MyOrders(c *gin.Context) {
	orders, err := h.svc.Orders.ListMine(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, valid := pathID(c, "id", domain.ErrOrderNotFound)
	if !valid {
		return
	}
	order, err := h.svc.Orders.GetMine(c.Request.Context(), principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order})
}
