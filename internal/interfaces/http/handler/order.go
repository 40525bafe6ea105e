package handler

import (
	"errors"
	"net/http"

	orderapp "github.com/noorboutique/backend/internal/application/order"
	"github.com/noorboutique/backend/internal/interfaces/http/dto"
	"github.com/noorboutique/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrderHandler handles order submission endpoints
type OrderHandler struct {
	BaseHandler
	intake *orderapp.IntakeService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(intake *orderapp.IntakeService) *OrderHandler {
	return &OrderHandler{intake: intake}
}

// Create submits a new order. Repeated requests carrying the same
// Idempotency-Key header replay the first successful result.
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			middleware.HandleValidationError(c, verrs)
			return
		}
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid JSON format")
		return
	}

	resp, err := h.intake.Create(c.Request.Context(), req, c.GetHeader("Idempotency-Key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
