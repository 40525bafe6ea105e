package order

import (
	"context"
	"time"

	"github.com/noorboutique/backend/internal/domain/order"
	"github.com/noorboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// requiredFields is checked in this order; the first missing field names the
// rejection, matching what the storefront expects to surface.
var requiredFields = []string{
	order.FieldCustomerName,
	order.FieldPhoneNumber,
	order.FieldWilaya,
	order.FieldCommune,
	order.FieldDeliveryType,
	order.FieldProductName,
	order.FieldProductPrice,
	order.FieldProductID,
	order.FieldSize,
}

// IntakeService accepts storefront order submissions: payload completeness
// first, then the domain rules, then a single write to the record store with
// optional idempotent replay.
type IntakeService struct {
	orders      order.Repository
	customers   order.CustomerRepository
	idempotency shared.IdempotencyStore
	idemCfg     shared.IdempotencyConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewIntakeService creates a new IntakeService. The customer repository may
// be nil; buyer profile upkeep is then skipped.
func NewIntakeService(
	orders order.Repository,
	customers order.CustomerRepository,
	idempotency shared.IdempotencyStore,
	idemCfg shared.IdempotencyConfig,
	logger *zap.Logger,
) *IntakeService {
	return &IntakeService{
		orders:      orders,
		customers:   customers,
		idempotency: idempotency,
		idemCfg:     idemCfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates and stores one order. idempotencyKey may be empty, in
// which case every call creates a new record.
func (s *IntakeService) Create(ctx context.Context, req CreateOrderRequest, idempotencyKey string) (*CreateOrderResponse, error) {
	if missing, ok := firstMissingField(req); !ok {
		return nil, shared.NewDomainError("MISSING_FIELD", "Missing required field: "+missing)
	}

	draft := req.toDraft()
	if !draft.DeliveryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid delivery type: "+req.DeliveryType)
	}
	if errs := draft.Validate(); !errs.IsEmpty() {
		return nil, shared.NewValidationError("Order validation failed", errs)
	}

	if replayed, ok := s.replay(ctx, idempotencyKey); ok {
		s.logger.Info("order submission replayed",
			zap.String("order_id", replayed),
			zap.String("idempotency_key", idempotencyKey))
		return &CreateOrderResponse{OrderID: replayed, Message: "Order submitted successfully"}, nil
	}

	o := order.FromDraft(draft, s.now().UTC())
	orderID, err := s.orders.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	if orderID == "" {
		orderID = order.PlaceholderOrderID()
	}

	s.remember(ctx, idempotencyKey, orderID)
	s.upsertCustomer(ctx, o)

	s.logger.Info("order created",
		zap.String("order_id", orderID),
		zap.String("wilaya", o.Wilaya),
		zap.String("product_id", o.ProductID))

	return &CreateOrderResponse{OrderID: orderID, Message: "Order submitted successfully"}, nil
}

func (s *IntakeService) replay(ctx context.Context, key string) (string, bool) {
	if key == "" || !s.idemCfg.Enabled || s.idempotency == nil {
		return "", false
	}
	orderID, found, err := s.idempotency.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn("idempotency lookup failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return orderID, found
}

func (s *IntakeService) remember(ctx context.Context, key, orderID string) {
	if key == "" || !s.idemCfg.Enabled || s.idempotency == nil {
		return
	}
	if _, _, err := s.idempotency.Remember(ctx, key, orderID, s.idemCfg.TTL); err != nil {
		s.logger.Warn("idempotency store failed", zap.String("key", key), zap.Error(err))
	}
}

// upsertCustomer keeps the buyer directory current. Failures are logged and
// swallowed; the order already exists and must be reported as placed.
func (s *IntakeService) upsertCustomer(ctx context.Context, o order.Order) {
	if s.customers == nil {
		return
	}
	existing, err := s.customers.FindByPhone(ctx, o.PhoneNumber)
	if err != nil {
		s.logger.Warn("customer lookup failed", zap.String("phone", o.PhoneNumber), zap.Error(err))
		return
	}
	if existing != nil {
		return
	}
	if _, err := s.customers.Create(ctx, order.Customer{
		Name:        o.CustomerName,
		PhoneNumber: o.PhoneNumber,
		Wilaya:      o.Wilaya,
		Commune:     o.Commune,
	}); err != nil {
		s.logger.Warn("customer create failed", zap.String("phone", o.PhoneNumber), zap.Error(err))
	}
}

func firstMissingField(req CreateOrderRequest) (string, bool) {
	values := map[string]bool{
		order.FieldCustomerName: req.CustomerName != "",
		order.FieldPhoneNumber:  req.PhoneNumber != "",
		order.FieldWilaya:       req.Wilaya != "",
		order.FieldCommune:      req.Commune != "",
		order.FieldDeliveryType: req.DeliveryType != "",
		order.FieldProductName:  req.ProductName != "",
		order.FieldProductPrice: !req.ProductPrice.IsZero(),
		order.FieldProductID:    req.ProductID != "",
		order.FieldSize:         req.Size != "",
	}
	for _, f := range requiredFields {
		if !values[f] {
			return f, false
		}
	}
	return "", true
}
