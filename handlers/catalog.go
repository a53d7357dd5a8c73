package handlers

import (
	"net/http"

	"buildlanka/models"
	"buildlanka/services/catalog"
	"buildlanka/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the marketplace browse surface.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func kindFromParam(param string) (models.ListingKind, bool) {
	switch param {
	case "vehicles":
		return models.KindVehicle, true
	case "materials":
		return models.KindMaterial, true
	default:
		return "", false
	}
}

// BrowseHandler handles GET /api/catalog/:kind with optional category,
// district and q query parameters.
func (h *CatalogHandler) BrowseHandler(c *gin.Context) {
	logger := getLogger(c)

	kind, ok := kindFromParam(c.Param("kind"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Unknown catalog", c.Param("kind"))
		return
	}

	var sel models.FilterSelection
	if err := c.ShouldBindQuery(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter selection", err.Error())
		return
	}

	listings, err := h.Svc.Browse(kind, sel)
	if err != nil {
		logger.Error("Failed to browse catalog", zap.String("kind", string(kind)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load catalog", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"count":    len(listings),
	})
}

// GetListingHandler handles GET /api/catalog/listings/:id.
func (h *CatalogHandler) GetListingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	listing, err := h.Svc.GetListing(id)
	if err != nil {
		logger.Error("Failed to fetch listing", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load listing", "")
		return
	}
	if listing == nil {
		utils.JSONError(c, http.StatusNotFound, "Listing not found", id)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// CategoriesHandler handles GET /api/catalog/:kind/categories, returning the
// selectable facet values for one catalog variant.
func (h *CatalogHandler) CategoriesHandler(c *gin.Context) {
	logger := getLogger(c)

	kind, ok := kindFromParam(c.Param("kind"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Unknown catalog", c.Param("kind"))
		return
	}

	categories, err := h.Svc.ListCategories(kind)
	if err != nil {
		logger.Error("Failed to list categories", zap.String("kind", string(kind)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load categories", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DistrictsHandler handles GET /api/catalog/districts.
func (h *CatalogHandler) DistrictsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"districts": h.Svc.ListDistricts()})
}
