package airtable

import (
	"context"
	"fmt"
	"time"

	"github.com/noorboutique/backend/internal/domain/order"
)

// OrderRepository writes submitted orders to the orders table
type OrderRepository struct {
	client *Client
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// Create writes the order and returns the record id assigned by the store
func (r *OrderRepository) Create(ctx context.Context, o order.Order) (string, error) {
	fields := map[string]any{
		fieldCustomerName: o.CustomerName,
		fieldPhoneNumber:  o.PhoneNumber,
		fieldWilaya:       o.Wilaya,
		fieldCommune:      o.Commune,
		fieldDeliveryType: deliveryDisplay(o.DeliveryType),
		// linked-record column, takes a list of product record ids
		fieldProductName: []string{o.ProductID},
		fieldOrderSize:   o.Size,
		fieldOrderDate:   o.PlacedAt.Format(time.RFC3339),
		fieldOrderStatus: o.Status,
	}

	rec, err := r.client.createRecord(ctx, r.client.config.OrdersTable, fields)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func deliveryDisplay(t order.DeliveryType) string {
	if t == order.DeliveryBureau {
		return deliveryBureauDisplay
	}
	return deliveryHomeDisplay
}

// CustomerRepository keeps buyer profiles in the customers table
type CustomerRepository struct {
	client *Client
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

// FindByPhone returns the profile stored under a phone number, or nil when
// the buyer is unknown
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*order.Customer, error) {
	formula := fmt.Sprintf("{%s} = %q", fieldPhoneNumber, phone)
	records, err := r.client.listRecords(ctx, r.client.config.CustomersTable, formula)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	rec := records[0]
	return &order.Customer{
		ID:          rec.ID,
		Name:        stringField(rec.Fields, fieldCustomerName),
		PhoneNumber: stringField(rec.Fields, fieldPhoneNumber),
		Wilaya:      stringField(rec.Fields, fieldWilaya),
		Commune:     stringField(rec.Fields, fieldCommune),
	}, nil
}

// Create stores a new buyer profile
func (r *CustomerRepository) Create(ctx context.Context, c order.Customer) (string, error) {
	fields := map[string]any{
		fieldCustomerName: c.Name,
		fieldPhoneNumber:  c.PhoneNumber,
		fieldWilaya:       c.Wilaya,
		fieldCommune:      c.Commune,
	}
	rec, err := r.client.createRecord(ctx, r.client.config.CustomersTable, fields)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
