package catalog

import (
	"context"

	"github.com/noorboutique/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// ImageCache keeps resolved category images for a short TTL so the landing
// page does not hit the record store on every render
type ImageCache interface {
	Get(category string) (string, bool)
	Set(category, image string)
}

// CategoryImageService resolves a representative image for a category from
// the products filed under it
type CategoryImageService struct {
	productRepo catalog.ProductRepository
	cache       ImageCache
	logger      *zap.Logger
}

// NewCategoryImageService creates a new CategoryImageService
func NewCategoryImageService(productRepo catalog.ProductRepository, cache ImageCache, logger *zap.Logger) *CategoryImageService {
	return &CategoryImageService{
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Resolve returns the first product image found in the category. A category
// with no imaged products resolves to an empty image rather than an error;
// the storefront falls back to its static artwork. Negative results are
// cached too, so an empty category does not defeat the cache.
func (s *CategoryImageService) Resolve(ctx context.Context, category string) (*CategoryImageResponse, error) {
	if image, ok := s.cache.Get(category); ok {
		return &CategoryImageResponse{Category: category, Image: image}, nil
	}

	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	image := ""
	for _, p := range products {
		if p.HasImage() {
			image = p.Image
			break
		}
	}
	if image == "" {
		s.logger.Debug("no product image found for category", zap.String("category", category))
	}

	s.cache.Set(category, image)
	return &CategoryImageResponse{Category: category, Image: image}, nil
}
