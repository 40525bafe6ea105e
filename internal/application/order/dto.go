package order

import (
	"github.com/noorboutique/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the order submission payload from the storefront.
// Presence of required fields is checked by the intake service so the
// missing-field messages stay uniform; the binding tags only guard the
// format of fields that were actually sent.
type CreateOrderRequest struct {
	CustomerName string          `json:"customerName"`
	PhoneNumber  string          `json:"phoneNumber" binding:"omitempty,dz_phone"`
	Wilaya       string          `json:"wilaya" binding:"omitempty,wilaya"`
	Commune      string          `json:"commune"`
	DeliveryType string          `json:"deliveryType"`
	ProductName  string          `json:"productName"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	ProductID    string          `json:"productId"`
	Size         string          `json:"size"`
	Image        string          `json:"image,omitempty"`
}

// CreateOrderResponse confirms a stored order
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

func (r CreateOrderRequest) toDraft() order.Draft {
	d := order.NewDraft(order.ProductSnapshot{
		ProductID: r.ProductID,
		Name:      r.ProductName,
		Price:     r.ProductPrice,
		Image:     r.Image,
	})
	d.CustomerName = r.CustomerName
	d.PhoneNumber = r.PhoneNumber
	d.Wilaya = r.Wilaya
	d.Commune = r.Commune
	d.DeliveryType = order.DeliveryType(r.DeliveryType)
	d.Size = r.Size
	return d
}
