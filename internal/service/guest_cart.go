package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

// GuestCartStore holds cart lines for the shared guest identity. It is
// process-scoped state: created once at startup, passed into the cart
// service, cleared on demand, gone on restart.
type GuestCartStore struct {
	mu    sync.Mutex
	items map[string]*entity.CartItem
}

func NewGuestCartStore() *GuestCartStore {
	return &GuestCartStore{items: make(map[string]*entity.CartItem)}
}

// Add merges into an existing line for the product or creates a new one.
func (s *GuestCartStore) Add(productID string, quantity int) *entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			item.Quantity += quantity
			line := *item
			return &line
		}
	}

	item := &entity.CartItem{
		ID:        uuid.NewString(),
		UserID:    entity.GuestIdentity,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.items[item.ID] = item
	line := *item
	return &line
}

func (s *GuestCartStore) List() []*entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*entity.CartItem, 0, len(s.items))
	for _, item := range s.items {
		line := *item
		items = append(items, &line)
	}
	return items
}

// UpdateQuantity returns false when the line is not a guest line, so the
// caller can fall through to the durable store.
func (s *GuestCartStore) UpdateQuantity(id string, quantity int) (*entity.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, false
	}
	item.Quantity = quantity
	line := *item
	return &line, true
}

func (s *GuestCartStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *GuestCartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*entity.CartItem)
}
