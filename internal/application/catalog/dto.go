package catalog

import (
	"github.com/noorboutique/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductResponse is the catalog product as served to the storefront
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Size        string          `json:"size,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"inStock"`
	SKU         string          `json:"sku,omitempty"`
	Image       string          `json:"image,omitempty"`
	Images      []string        `json:"images,omitempty"`
}

// ProductListResponse wraps a product listing
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// CategoryImageResponse carries the representative image for a category
type CategoryImageResponse struct {
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// VariantResponse is a purchasable variation of a product. The storefront
// currently sells single-variant garments; the listing carries one entry per
// size so the dialog can render its selector from catalog data.
type VariantResponse struct {
	ProductID string          `json:"productId"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
	InStock   bool            `json:"inStock"`
}

func toProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Size:        p.Size,
		Colors:      p.Colors,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		SKU:         p.SKU,
		Image:       p.Image,
		Images:      p.Images,
	}
}

func toProductListResponse(products []catalog.Product) *ProductListResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return &ProductListResponse{Products: out, Total: len(out)}
}
