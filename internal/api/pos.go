package api

import (
	"github.com/labstack/echo/v4"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type POSHandler struct {
	pos *service.POSService
}

func NewPOSHandler(pos *service.POSService) *POSHandler {
	return &POSHandler{pos: pos}
}

// RecordSale processes a till transaction --> POST /api/pos/sales
func (h *POSHandler) RecordSale(c echo.Context) error {
	sale := entity.Sale{}
	if err := c.Bind(&sale); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	recorded, err := h.pos.RecordSale(c.Request().Context(), &sale)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, map[string]interface{}{
		"success": true,
		"saleId":  recorded.ID,
		"message": "Sale processed successfully and inventory updated",
	})
}

// SalesStats summarises today's takings --> GET /api/pos/sales
func (h *POSHandler) SalesStats(c echo.Context) error {
	stats, err := h.pos.Stats(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, stats)
}

// ListSales returns the full ledger --> GET /api/pos/sales/all
func (h *POSHandler) ListSales(c echo.Context) error {
	sales, err := h.pos.ListSales(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, sales)
}
