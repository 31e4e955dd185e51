package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

// CartService manages cart lines for persistent identities (durable store)
// and the guest identity (process-local store).
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	guest    *GuestCartStore
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, guest *GuestCartStore) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		guest:    guest,
	}
}

// AddLine merges a second add for the same product by summing quantities.
// Product existence is not checked here; an orphaned line surfaces as a
// not-found error when the cart is listed.
func (s *CartService) AddLine(ctx context.Context, identity, productID string, quantity int) (*entity.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}

	if identity == entity.GuestIdentity {
		return s.guest.Add(productID, quantity), nil
	}

	existing, err := s.carts.FindLine(ctx, identity, productID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		logger.Error().Err(err).Msgf("Error looking up cart line for user %s", identity)
		return nil, err
	}

	if existing != nil {
		return s.carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
	}

	item := &entity.CartItem{
		ID:        uuid.NewString(),
		UserID:    identity,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	if err := s.carts.Create(ctx, item); err != nil {
		logger.Error().Err(err).Msgf("Error creating cart line for user %s", identity)
		return nil, err
	}
	return item, nil
}

// ListLines returns each cart line joined with its product. A line whose
// product has been deleted fails the whole listing.
func (s *CartService) ListLines(ctx context.Context, identity string) ([]*entity.CartLine, error) {
	var items []*entity.CartItem
	var err error
	if identity == entity.GuestIdentity {
		items = s.guest.List()
	} else {
		items, err = s.carts.GetByUser(ctx, identity)
		if err != nil {
			logger.Error().Err(err).Msgf("Error fetching cart for user %s", identity)
			return nil, err
		}
	}

	lines := make([]*entity.CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, &entity.CartLine{CartItem: *item, Product: *product})
	}
	return lines, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.CartItem, error) {
	if item, ok := s.guest.UpdateQuantity(id, quantity); ok {
		return item, nil
	}
	return s.carts.UpdateQuantity(ctx, id, quantity)
}

func (s *CartService) RemoveLine(ctx context.Context, id string) error {
	if s.guest.Remove(id) {
		return nil
	}
	return s.carts.Delete(ctx, id)
}

func (s *CartService) Clear(ctx context.Context, identity string) error {
	if identity == entity.GuestIdentity {
		s.guest.Clear()
		return nil
	}
	return s.carts.Clear(ctx, identity)
}
