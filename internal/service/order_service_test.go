package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

func TestPlaceOrderComputesSnapshotTotal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	orders := NewOrderService(store.Orders, carts, nil, nil)

	items := []entity.OrderItem{
		{ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{ProductID: "p2", Quantity: 1, Price: decimal.RequireFromString("5.50")},
	}

	order, err := orders.PlaceOrder(ctx, entity.GuestIdentity, entity.CustomerInfo{Name: "Thabo"}, items, "")
	require.NoError(t, err)

	assert.Equal(t, "25.50", order.Total.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Empty(t, order.UserID, "guest checkouts persist with no owner")
	require.Len(t, order.Items, 2)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
}

func TestPlaceOrderIgnoresLiveCatalogPrices(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	orders := NewOrderService(store.Orders, carts, nil, nil)
	product := seedProduct(t, store, "Durban Poison", "120.00", 10)

	// checkout snapshot carries an older price
	items := []entity.OrderItem{
		{ProductID: product.ID, Quantity: 1, Price: decimal.RequireFromString("99.00")},
	}
	order, err := orders.PlaceOrder(ctx, "user-1", entity.CustomerInfo{}, items, "")
	require.NoError(t, err)
	assert.Equal(t, "99.00", order.Total.StringFixed(2))

	// later price changes never touch the stored order
	product.Price = decimal.RequireFromString("150.00")
	require.NoError(t, store.Products.Update(ctx, product))
	stored, err := orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "99.00", stored.Total.StringFixed(2))
}

func TestPlaceOrderClearsOriginatingCart(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	orders := NewOrderService(store.Orders, carts, nil, nil)
	product := seedProduct(t, store, "Swazi Gold", "100.00", 10)

	for _, identity := range []string{entity.GuestIdentity, "user-1"} {
		_, err := carts.AddLine(ctx, identity, product.ID, 2)
		require.NoError(t, err)

		items := []entity.OrderItem{{ProductID: product.ID, Quantity: 2, Price: product.Price}}
		_, err = orders.PlaceOrder(ctx, identity, entity.CustomerInfo{}, items, "")
		require.NoError(t, err)

		lines, err := carts.ListLines(ctx, identity)
		require.NoError(t, err)
		assert.Empty(t, lines)
	}
}

func TestListOrdersByIdentity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	carts := newTestCartService(store)
	orders := NewOrderService(store.Orders, carts, nil, nil)

	items := []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: decimal.RequireFromString("10.00")}}
	_, err := orders.PlaceOrder(ctx, "user-1", entity.CustomerInfo{}, items, "")
	require.NoError(t, err)

	mine, err := orders.ListOrders(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := orders.ListOrders(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
