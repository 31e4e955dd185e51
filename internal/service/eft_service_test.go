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

func newTestEFTService() (*EFTService, *repository.Store) {
	store := repository.NewMemoryStore()
	return NewEFTService(store.Orders, nil), store
}

func createEFTOrder(t *testing.T, eft *EFTService, reference string) *entity.Order {
	t.Helper()
	order, err := eft.CreateOrder(context.Background(), reference,
		entity.CustomerInfo{Name: "Sipho", Email: "sipho@example.com"},
		[]entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: decimal.RequireFromString("120.00")}},
		decimal.RequireFromString("120.00"))
	require.NoError(t, err)
	return order
}

func TestCreateEFTOrder(t *testing.T) {
	eft, store := newTestEFTService()
	order := createEFTOrder(t, eft, "TMH-1")

	assert.Equal(t, entity.OrderStatusPendingPayment, order.Status)
	assert.Equal(t, entity.PaymentMethodEFT, order.PaymentMethod)
	assert.Equal(t, "TMH-1", order.OrderReference)
	require.Len(t, order.Items, 1)

	stored, err := store.Orders.GetByReference(context.Background(), "TMH-1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}

func TestConfirmPaymentMovesToSubmitted(t *testing.T) {
	ctx := context.Background()
	eft, store := newTestEFTService()
	createEFTOrder(t, eft, "TMH-1")

	require.NoError(t, eft.ConfirmPayment(ctx, "TMH-1"))

	order, err := store.Orders.GetByReference(ctx, "TMH-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaymentSubmitted, order.Status)
}

func TestConfirmPaymentUnknownReference(t *testing.T) {
	eft, _ := newTestEFTService()
	err := eft.ConfirmPayment(context.Background(), "unknown-ref")
	assert.ErrorIs(t, err, repository.ErrEFTOrderNotFound)
}

func TestSetStatusValidatesState(t *testing.T) {
	ctx := context.Background()
	eft, store := newTestEFTService()
	createEFTOrder(t, eft, "TMH-2")

	err := eft.SetStatus(ctx, "TMH-2", entity.OrderStatus("bogus"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	order, err := store.Orders.GetByReference(ctx, "TMH-2")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendingPayment, order.Status)

	require.NoError(t, eft.SetStatus(ctx, "TMH-2", entity.OrderStatusPaymentConfirmed))
	order, err = store.Orders.GetByReference(ctx, "TMH-2")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaymentConfirmed, order.Status)
}

func TestListReturnsOnlyEFTPipeline(t *testing.T) {
	ctx := context.Background()
	eft, store := newTestEFTService()
	createEFTOrder(t, eft, "TMH-1")
	createEFTOrder(t, eft, "TMH-2")
	require.NoError(t, eft.SetStatus(ctx, "TMH-2", entity.OrderStatusFulfilled))

	orders, err := eft.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "TMH-1", orders[0].OrderReference)

	// a plain checkout order never shows up in the EFT pipeline
	require.NoError(t, store.Orders.Create(ctx, &entity.Order{
		ID:     "plain",
		Status: entity.OrderStatusPending,
		Total:  decimal.Zero,
	}))
	orders, err = eft.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
