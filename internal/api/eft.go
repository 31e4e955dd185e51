package api

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type EFTHandler struct {
	eft *service.EFTService
}

func NewEFTHandler(eft *service.EFTService) *EFTHandler {
	return &EFTHandler{eft: eft}
}

// CreateOrder opens an EFT order awaiting bank transfer --> POST /api/eft-orders
func (h *EFTHandler) CreateOrder(c echo.Context) error {
	req := struct {
		OrderReference string              `json:"orderReference"`
		CustomerInfo   entity.CustomerInfo `json:"customerInfo"`
		Items          []orderItemRequest  `json:"items"`
		TotalAmount    decimal.Decimal     `json:"totalAmount"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if req.OrderReference == "" {
		return c.JSON(400, map[string]string{"error": "Order reference is required"})
	}

	order, err := h.eft.CreateOrder(c.Request().Context(), req.OrderReference,
		req.CustomerInfo, toOrderItems(req.Items), req.TotalAmount)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(201, map[string]interface{}{
		"success":        true,
		"orderId":        order.ID,
		"orderReference": order.OrderReference,
		"message":        "Order created successfully. Please complete EFT payment.",
	})
}

// ConfirmPayment records that payment proof was submitted
// --> POST /api/eft-orders/confirm-payment
func (h *EFTHandler) ConfirmPayment(c echo.Context) error {
	req := struct {
		OrderReference string `json:"orderReference"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.eft.ConfirmPayment(c.Request().Context(), req.OrderReference); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]interface{}{
		"success": true,
		"message": "Payment proof submitted. Order will be verified within 2-4 hours.",
	})
}

// ListOrders returns orders in the EFT pipeline --> GET /api/eft-orders
func (h *EFTHandler) ListOrders(c echo.Context) error {
	orders, err := h.eft.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, orders)
}

// SetStatus applies an admin status change --> PUT /api/eft-orders/:reference/status
func (h *EFTHandler) SetStatus(c echo.Context) error {
	req := struct {
		Status string `json:"status"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	reference := c.Param("reference")
	if err := h.eft.SetStatus(c.Request().Context(), reference, entity.OrderStatus(req.Status)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]interface{}{
		"success": true,
		"message": "Order " + reference + " status updated to " + req.Status,
	})
}
