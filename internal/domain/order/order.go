package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusNew = "New Order"

// Order is the record persisted to the record store, assembled from a
// validated draft at submission time
type Order struct {
	ID           string
	CustomerName string
	PhoneNumber  string
	Wilaya       string
	Commune      string
	DeliveryType DeliveryType
	ProductID    string
	ProductName  string
	ProductPrice decimal.Decimal
	Size         string
	Status       string
	PlacedAt     time.Time
}

// FromDraft assembles an order from a validated draft. Phone whitespace is
// stripped and the wilaya is replaced by its canonical spelling so stored
// records stay uniform regardless of how the shopper typed them.
func FromDraft(d Draft, now time.Time) Order {
	wilaya := d.Wilaya
	if canonical, ok := CanonicalWilaya(wilaya); ok {
		wilaya = canonical
	}
	return Order{
		CustomerName: d.CustomerName,
		PhoneNumber:  StripPhoneWhitespace(d.PhoneNumber),
		Wilaya:       wilaya,
		Commune:      d.Commune,
		DeliveryType: d.DeliveryType,
		ProductID:    d.Product.ProductID,
		ProductName:  d.Product.Name,
		ProductPrice: d.Product.Price,
		Size:         d.Size,
		Status:       StatusNew,
		PlacedAt:     now,
	}
}

// Customer is the lightweight buyer profile kept alongside orders, keyed by
// phone number
type Customer struct {
	ID          string
	Name        string
	PhoneNumber string
	Wilaya      string
	Commune     string
}
