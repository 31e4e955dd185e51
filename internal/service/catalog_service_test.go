package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

func TestCreateProductValidatesRequiredFields(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryProductRepository(), nil)

	_, err := catalog.CreateProduct(context.Background(), &entity.Product{Name: "no description"})
	assert.Error(t, err)
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalogService(repository.NewMemoryProductRepository(), nil)

	created, err := catalog.CreateProduct(ctx, &entity.Product{
		Name:        "Durban Poison",
		Description: "Pure landrace sativa.",
		Price:       decimal.RequireFromString("120.00"),
		Category:    "flower",
		Stock:       5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.InStock)

	fetched, err := catalog.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)

	fetched.Stock = 2
	updated, err := catalog.UpdateProduct(ctx, fetched)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stock)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))
	_, err = catalog.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestUpdateMissingProduct(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryProductRepository(), nil)

	_, err := catalog.UpdateProduct(context.Background(), &entity.Product{ID: "missing"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestRefreshProductsReplacesCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalogService(repository.NewMemoryProductRepository(), nil)

	old, err := catalog.CreateProduct(ctx, &entity.Product{
		Name:        "Old Stock",
		Description: "To be cleared.",
		Price:       decimal.RequireFromString("10.00"),
		Category:    "flower",
	})
	require.NoError(t, err)

	require.NoError(t, catalog.RefreshProducts(ctx))

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(defaultCatalog))
	for _, product := range products {
		assert.NotEqual(t, old.ID, product.ID)
	}
}
