package api

import (
	"github.com/labstack/echo/v4"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts returns the whole catalog --> GET /api/products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, products)
}

// GetProduct returns one product --> GET /api/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, product)
}

// CreateProduct adds a catalog entry --> POST /api/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	product := entity.Product{}
	if err := c.Bind(&product); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.catalog.CreateProduct(c.Request().Context(), &product)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, created)
}

// UpdateProduct applies admin edits --> PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}

	// Binding onto the stored product overlays only the fields present in
	// the payload, so a partial edit keeps everything else intact.
	if err := c.Bind(product); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	product.ID = c.Param("id")

	updated, err := h.catalog.UpdateProduct(c.Request().Context(), product)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, updated)
}

// DeleteProduct removes a catalog entry --> DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}

// RefreshProducts reseeds the catalog --> POST /api/admin/refresh-products
func (h *ProductHandler) RefreshProducts(c echo.Context) error {
	if err := h.catalog.RefreshProducts(c.Request().Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"message": "Products refreshed successfully"})
}
