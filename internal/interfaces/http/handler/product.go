package handler

import (
	"github.com/noorboutique/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	products *catalog.ProductService
	images   *catalog.CategoryImageService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalog.ProductService, images *catalog.CategoryImageService) *ProductHandler {
	return &ProductHandler{
		products: products,
		images:   images,
	}
}

// List returns the catalog, optionally filtered with ?category=
func (h *ProductHandler) List(c *gin.Context) {
	resp, err := h.products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID returns one product
func (h *ProductHandler) GetByID(c *gin.Context) {
	resp, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Variants returns the purchasable size variations of a product
func (h *ProductHandler) Variants(c *gin.Context) {
	variants, err := h.products.Variants(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, variants)
}

// CategoryImage returns the representative image for a category
func (h *ProductHandler) CategoryImage(c *gin.Context) {
	resp, err := h.images.Resolve(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
