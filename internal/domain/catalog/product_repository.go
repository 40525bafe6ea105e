package catalog

import "context"

// ProductRepository defines read-only access to the product catalog.
// The catalog is owned by an external record store; there are no writes
// from this service.
type ProductRepository interface {
	// FindAll retrieves every product in the catalog
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a product by its record id.
	// Returns shared.ErrNotFound if no such record exists.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCategory retrieves the products in a category
	FindByCategory(ctx context.Context, category string) ([]Product, error)
}
