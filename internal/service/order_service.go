package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

// OrderService creates checkout orders from cart snapshots.
type OrderService struct {
	orders repository.OrderRepository
	carts  *CartService
	events *EventPublisher
	rdb    *redis.Client
}

func NewOrderService(orders repository.OrderRepository, carts *CartService, events *EventPublisher, rdb *redis.Client) *OrderService {
	return &OrderService{
		orders: orders,
		carts:  carts,
		events: events,
		rdb:    rdb,
	}
}

// PlaceOrder persists the order and its line items in one transaction and
// then clears the originating cart. The total is computed from the supplied
// line items: unit prices are the caller's checkout snapshot and are not
// re-validated against the live catalog.
func (s *OrderService) PlaceOrder(ctx context.Context, identity string, customerInfo entity.CustomerInfo, items []entity.OrderItem, idempotentKey string) (*entity.Order, error) {
	if idempotentKey != "" {
		ok, err := s.claimIdempotentKey(ctx, idempotentKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDuplicateCheckout
		}
	}

	total := decimal.Zero
	for i := range items {
		items[i].ID = uuid.NewString()
		total = total.Add(items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
	}

	order := &entity.Order{
		ID:           uuid.NewString(),
		Total:        total,
		Status:       entity.OrderStatusPending,
		CustomerInfo: customerInfo,
		Items:        items,
		CreatedAt:    time.Now(),
	}
	if identity != entity.GuestIdentity {
		order.UserID = identity
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	if err := s.orders.Create(ctx, order); err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	if err := s.carts.Clear(ctx, identity); err != nil {
		logger.Error().Err(err).Msgf("Error clearing cart for %s after order %s", identity, order.ID)
	}

	if err := s.events.Publish(ctx, "order-created", order.ID, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, identity string) ([]*entity.Order, error) {
	if identity == entity.GuestIdentity {
		return []*entity.Order{}, nil
	}
	orders, err := s.orders.GetByUser(ctx, identity)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching orders for user %s", identity)
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) claimIdempotentKey(ctx context.Context, key string) (bool, error) {
	if s.rdb == nil {
		return true, nil
	}
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	val, err := s.rdb.Get(ctx, redisKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if val != "" {
		return false, nil
	}
	return true, s.rdb.Set(ctx, redisKey, "exists", 24*time.Hour).Err()
}
