package airtable

import (
	"context"

	"github.com/noorboutique/backend/internal/domain/catalog"
	"github.com/noorboutique/backend/internal/domain/order"
	"github.com/noorboutique/backend/internal/domain/shared"
)

// Unconfigured record store stand-ins, used when no API key is provided.
// The server still boots; every store operation answers with a configuration
// error so the problem surfaces per request instead of at startup.

// UnconfiguredProductRepository fails every catalog read
type UnconfiguredProductRepository struct{}

func (UnconfiguredProductRepository) FindAll(context.Context) ([]catalog.Product, error) {
	return nil, shared.ErrNotConfigured
}

func (UnconfiguredProductRepository) FindByID(context.Context, string) (*catalog.Product, error) {
	return nil, shared.ErrNotConfigured
}

func (UnconfiguredProductRepository) FindByCategory(context.Context, string) ([]catalog.Product, error) {
	return nil, shared.ErrNotConfigured
}

// UnconfiguredOrderRepository fails every order write
type UnconfiguredOrderRepository struct{}

func (UnconfiguredOrderRepository) Create(context.Context, order.Order) (string, error) {
	return "", shared.ErrNotConfigured
}
