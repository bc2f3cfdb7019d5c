package http

import (
	"net/http"

	"marketplace/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListVendors(c *gin.Context) {
	var status *domain.VendorStatus
	if raw := c.Query("status"); raw != "" {
		s, err := domain.ParseVendorStatus(raw)
		if err != nil {
			fail(c, err)
			return
		}
		status = &s
	}

	vendors, err := h.svc.Vendors.List(c.Request.Context(), principal(c), status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"vendors": vendors})
}

func (h *Handler) GetVendor(c *gin.Context) {
	id, valid := pathID(c, "vendorId", domain.ErrVendorNotFound)
	if !valid {
		return
	}
	v, err := h.svc.Vendors.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"vendor": v})
}

func (h *Handler) ApproveVendor(c *gin.Context) {
	id, valid := pathID(c, "vendorId", domain.ErrVendorNotFound)
	if !valid {
		return
	}
	v, err := h.svc.Vendors.Approve(c.Request.Context(), principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"vendor": v})
}

func (h *Handler) RejectVendor(c *gin.Context) {
	id, valid := pathID(c, "vendorId", domain.ErrVendorNotFound)
	if !valid {
		return
	}
	v, err := h.svc.Vendors.Reject(c.Request.Context(), principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"vendor": v})
}

func (h *Handler) PlatformStats(c *gin.Context) {
	stats, err := h.svc.Stats.Platform(c.Request.Context(), principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) VendorStats(c *gin.Context) {
	id, valid := pathID(c, "vendorId", domain.ErrVendorNotFound)
	if !valid {
		return
	}
	stats, err := h.svc.Stats.Vendor(c.Request.Context(), principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.svc.Settings.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"settings": s})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.svc.Settings.Update(c.Request.Context(), principal(c), domain.SettingsUpdate(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"settings": s})
}
