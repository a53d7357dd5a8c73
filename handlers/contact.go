package handlers

import (
	"fmt"
	"net/http"

	"buildlanka/services/catalog"
	"buildlanka/services/contact"
	"buildlanka/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler builds supplier contact deep links from listings.
type ContactHandler struct {
	Catalog catalog.CatalogService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(catalogSvc catalog.CatalogService) *ContactHandler {
	return &ContactHandler{Catalog: catalogSvc}
}

// LinksHandler handles GET /api/contact/:listingID. An optional "message"
// query parameter pre-fills the WhatsApp chat; when absent a default inquiry
// naming the listing is used.
func (h *ContactHandler) LinksHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("listingID")

	listing, err := h.Catalog.GetListing(id)
	if err != nil {
		logger.Error("Failed to load listing for contact", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load listing", "")
		return
	}
	if listing == nil {
		utils.JSONError(c, http.StatusNotFound, "Listing not found", id)
		return
	}

	message := c.Query("message")
	if message == "" {
		message = fmt.Sprintf("Hello %s, I am interested in your listing \"%s\".",
			listing.Supplier.Name, listing.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"supplier": listing.Supplier.Name,
		"phone":    listing.Supplier.Phone,
		"tel":      contact.TelLink(listing.Supplier.Phone),
		"whatsapp": contact.WhatsAppLink(listing.Supplier.Phone, message),
	})
}
