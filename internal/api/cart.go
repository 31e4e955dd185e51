package api

import (
	"github.com/labstack/echo/v4"

	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// ListCart returns the cart with products resolved --> GET /api/cart
func (h *CartHandler) ListCart(c echo.Context) error {
	lines, err := h.carts.ListLines(c.Request().Context(), identityFrom(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, lines)
}

// AddToCart adds or merges a cart line --> POST /api/cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	req := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if req.ProductID == "" {
		return c.JSON(400, map[string]string{"error": "Product ID is required"})
	}

	item, err := h.carts.AddLine(c.Request().Context(), identityFrom(c), req.ProductID, req.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, item)
}

// UpdateCartItem sets a line's quantity --> PUT /api/cart/:id
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	req := struct {
		Quantity int `json:"quantity"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	item, err := h.carts.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, item)
}

// RemoveCartItem deletes one line --> DELETE /api/cart/:id
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	if err := h.carts.RemoveLine(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}

// ClearCart empties the identity's cart --> DELETE /api/cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.carts.Clear(c.Request().Context(), identityFrom(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}
