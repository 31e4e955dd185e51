package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

// eftStatuses is the fixed set of states an order passes through while an
// EFT payment is in flight.
var eftStatuses = []entity.OrderStatus{
	entity.OrderStatusPendingPayment,
	entity.OrderStatusPaymentSubmitted,
	entity.OrderStatusPaymentConfirmed,
}

// EFTService tracks manual bank-transfer orders, keyed by the caller-supplied
// order reference instead of the order id.
type EFTService struct {
	orders repository.OrderRepository
	events *EventPublisher
}

func NewEFTService(orders repository.OrderRepository, events *EventPublisher) *EFTService {
	return &EFTService{orders: orders, events: events}
}

// CreateOrder records an EFT order awaiting payment. The caller keeps its
// cart; EFT checkouts do not touch it.
func (s *EFTService) CreateOrder(ctx context.Context, reference string, customerInfo entity.CustomerInfo, items []entity.OrderItem, total decimal.Decimal) (*entity.Order, error) {
	order := &entity.Order{
		ID:             uuid.NewString(),
		Total:          total,
		Status:         entity.OrderStatusPendingPayment,
		CustomerInfo:   customerInfo,
		PaymentMethod:  entity.PaymentMethodEFT,
		OrderReference: reference,
		Items:          items,
		CreatedAt:      time.Now(),
	}
	for i := range order.Items {
		order.Items[i].ID = uuid.NewString()
		order.Items[i].OrderID = order.ID
	}

	if err := s.orders.Create(ctx, order); err != nil {
		logger.Error().Err(err).Msgf("Error creating EFT order %s", reference)
		return nil, err
	}
	return order, nil
}

// ConfirmPayment marks the order's payment proof as submitted for review.
func (s *EFTService) ConfirmPayment(ctx context.Context, reference string) error {
	if err := s.setStatus(ctx, reference, entity.OrderStatusPaymentSubmitted); err != nil {
		return err
	}
	if err := s.events.Publish(ctx, "eft-payment-submitted", reference, map[string]string{"orderReference": reference}); err != nil {
		logger.Error().Err(err).Msgf("Error publishing payment event for %s", reference)
	}
	return nil
}

// SetStatus applies an admin status change. Unknown states are rejected,
// same as every other order transition.
func (s *EFTService) SetStatus(ctx context.Context, reference string, status entity.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.setStatus(ctx, reference, status)
}

func (s *EFTService) setStatus(ctx context.Context, reference string, status entity.OrderStatus) error {
	order, err := s.orders.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		logger.Error().Err(err).Msgf("Error updating EFT order %s", reference)
		return err
	}
	return nil
}

// List returns every order currently in the EFT payment pipeline.
func (s *EFTService) List(ctx context.Context) ([]*entity.Order, error) {
	return s.orders.ListByStatuses(ctx, eftStatuses)
}
