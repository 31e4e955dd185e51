package api

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func toOrderItems(items []orderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return out
}

// CreateOrder places an order from the checkout snapshot --> POST /api/orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	req := struct {
		CustomerInfo entity.CustomerInfo `json:"customerInfo"`
		Items        []orderItemRequest  `json:"items"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if len(req.Items) == 0 {
		return c.JSON(400, map[string]string{"error": "Order items are required"})
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), identityFrom(c),
		req.CustomerInfo, toOrderItems(req.Items), c.Request().Header.Get("Idempotent-Key"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, order)
}

// ListOrders returns the identity's orders --> GET /api/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context(), identityFrom(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, orders)
}
