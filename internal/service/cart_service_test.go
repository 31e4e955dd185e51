package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

func newTestStore() *repository.Store {
	return repository.NewMemoryStore()
}

func newTestCartService(store *repository.Store) *CartService {
	return NewCartService(store.Carts, store.Products, NewGuestCartStore())
}

func seedProduct(t *testing.T, store *repository.Store, name, price string, stock int) *entity.Product {
	t.Helper()
	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Category:    "flower",
		InStock:     true,
		Stock:       stock,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.Products.Create(context.Background(), product))
	return product
}

func TestAddLineMergesQuantities(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	product := seedProduct(t, store, "Durban Poison", "120.00", 10)

	for _, identity := range []string{entity.GuestIdentity, "user-1"} {
		first, err := carts.AddLine(ctx, identity, product.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, first.Quantity)

		second, err := carts.AddLine(ctx, identity, product.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 5, second.Quantity)

		lines, err := carts.ListLines(ctx, identity)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	}
}

func TestAddLineDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	product := seedProduct(t, store, "Swazi Gold", "100.00", 10)

	line, err := carts.AddLine(ctx, "user-1", product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestListLinesFailsWhenProductDeleted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	product := seedProduct(t, store, "Cheese Hybrid", "140.00", 10)

	_, err := carts.AddLine(ctx, "user-1", product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, store.Products.Delete(ctx, product.ID))

	_, err = carts.ListLines(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestListLinesResolvesProducts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	product := seedProduct(t, store, "Durban Poison", "120.00", 10)

	_, err := carts.AddLine(ctx, entity.GuestIdentity, product.ID, 2)
	require.NoError(t, err)

	lines, err := carts.ListLines(ctx, entity.GuestIdentity)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, product.Name, lines[0].Product.Name)
	assert.True(t, lines[0].Product.Price.Equal(product.Price))
}

func TestUpdateQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	product := seedProduct(t, store, "Swazi Gold", "100.00", 10)

	line, err := carts.AddLine(ctx, "user-1", product.ID, 1)
	require.NoError(t, err)

	updated, err := carts.UpdateQuantity(ctx, line.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	require.NoError(t, carts.RemoveLine(ctx, line.ID))
	lines, err := carts.ListLines(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	// removing again is a no-op
	require.NoError(t, carts.RemoveLine(ctx, line.ID))
}

func TestClearCartPerIdentity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	product := seedProduct(t, store, "Durban Poison", "120.00", 10)

	_, err := carts.AddLine(ctx, "user-1", product.ID, 1)
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, entity.GuestIdentity, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, carts.Clear(ctx, "user-1"))

	userLines, err := carts.ListLines(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, userLines)

	guestLines, err := carts.ListLines(ctx, entity.GuestIdentity)
	require.NoError(t, err)
	assert.Len(t, guestLines, 1)
}
