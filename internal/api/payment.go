package api

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type PaymentHandler struct {
	payments *service.PaymentClient
}

func NewPaymentHandler(payments *service.PaymentClient) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreatePaymentIntent asks the processor for a payment handle
// --> POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	req := struct {
		Amount decimal.Decimal `json:"amount"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	clientSecret, err := h.payments.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotConfigured) {
			return c.JSON(500, map[string]string{"error": "Payment processing not available. Processor not configured."})
		}
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"clientSecret": clientSecret})
}
