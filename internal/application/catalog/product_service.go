package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/noorboutique/backend/internal/domain/catalog"
	"github.com/noorboutique/backend/internal/domain/order"
)

// ProductService serves the storefront catalog
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns all products, optionally filtered by category. Category
// matching is case-insensitive; listings are sorted by name so the grid is
// stable across record-store pagination order.
func (s *ProductService) List(ctx context.Context, category string) (*ProductListResponse, error) {
	var (
		products []catalog.Product
		err      error
	)
	if category != "" {
		products, err = s.productRepo.FindByCategory(ctx, category)
	} else {
		products, err = s.productRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(products, func(a, b int) bool {
		return strings.ToLower(products[a].Name) < strings.ToLower(products[b].Name)
	})
	return toProductListResponse(products), nil
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id string) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(*p)
	return &resp, nil
}

// Variants returns the purchasable size variations of a product. Every
// garment is offered in the standard size run at the product's price; a
// product with zero stock has no purchasable variants.
func (s *ProductService) Variants(ctx context.Context, id string) ([]VariantResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	variants := make([]VariantResponse, 0, len(order.Sizes))
	for _, size := range order.Sizes {
		variants = append(variants, VariantResponse{
			ProductID: p.ID,
			Size:      size,
			Price:     p.Price,
			InStock:   p.InStock(),
		})
	}
	return variants, nil
}
