package order

import "context"

// Repository persists submitted orders in the record store
type Repository interface {
	// Create writes the order and returns the record id assigned by the
	// store. An empty id with a nil error means the write succeeded but the
	// store did not report an id.
	Create(ctx context.Context, o Order) (string, error)
}

// CustomerRepository keeps buyer profiles keyed by phone number.
// Customer upkeep is best effort; callers must not fail an order when these
// operations error.
type CustomerRepository interface {
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	Create(ctx context.Context, c Customer) (string, error)
}
