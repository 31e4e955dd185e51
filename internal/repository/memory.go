package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

// Memory-backed repositories used for tests and local development. They share
// the locking discipline of the MySQL store's transactions at a coarse level:
// one mutex per repository.

type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[string]*entity.Product)}
}

func (r *MemoryProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		copy := *p
		products = append(products, &copy)
	}
	return products, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *product
	r.products[product.ID] = &copy
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *product
	r.products[product.ID] = &copy
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *MemoryProductRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[string]*entity.Product)
	return nil
}

type MemoryCartRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.CartItem
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{items: make(map[string]*entity.CartItem)}
}

func (r *MemoryCartRepository) GetByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			copy := *item
			items = append(items, &copy)
		}
	}
	return items, nil
}

func (r *MemoryCartRepository) FindLine(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			copy := *item
			return &copy, nil
		}
	}
	return nil, ErrCartItemNotFound
}

func (r *MemoryCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *item
	r.items[item.ID] = &copy
	return nil
}

func (r *MemoryCartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrCartItemNotFound
	}
	item.Quantity = quantity
	copy := *item
	return &copy, nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *MemoryCartRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]*entity.Order)}
}

func (r *MemoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *order
	copy.Items = append([]entity.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &copy
	return nil
}

func (r *MemoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	copy := *order
	return &copy, nil
}

func (r *MemoryOrderRepository) GetByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			copy := *order
			orders = append(orders, &copy)
		}
	}
	return orders, nil
}

func (r *MemoryOrderRepository) GetByReference(ctx context.Context, reference string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.OrderReference == reference && reference != "" {
			copy := *order
			return &copy, nil
		}
	}
	return nil, ErrEFTOrderNotFound
}

func (r *MemoryOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order, ok := r.orders[id]; ok {
		order.Status = status
	}
	return nil
}

func (r *MemoryOrderRepository) ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []*entity.Order
	for _, order := range r.orders {
		for _, status := range statuses {
			if order.Status == status {
				copy := *order
				orders = append(orders, &copy)
				break
			}
		}
	}
	return orders, nil
}

type MemoryMembershipRepository struct {
	mu        sync.Mutex
	apps      map[string]*entity.MembershipApplication
	sequences map[int]int
}

func NewMemoryMembershipRepository() *MemoryMembershipRepository {
	return &MemoryMembershipRepository{
		apps:      make(map[string]*entity.MembershipApplication),
		sequences: make(map[int]int),
	}
}

func (r *MemoryMembershipRepository) Create(ctx context.Context, app *entity.MembershipApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *app
	r.apps[app.ID] = &copy
	return nil
}

func (r *MemoryMembershipRepository) GetAll(ctx context.Context) ([]*entity.MembershipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	apps := make([]*entity.MembershipApplication, 0, len(r.apps))
	for _, app := range r.apps {
		copy := *app
		apps = append(apps, &copy)
	}
	return apps, nil
}

func (r *MemoryMembershipRepository) GetByID(ctx context.Context, id string) (*entity.MembershipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	copy := *app
	return &copy, nil
}

func (r *MemoryMembershipRepository) Update(ctx context.Context, app *entity.MembershipApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *app
	r.apps[app.ID] = &copy
	return nil
}

func (r *MemoryMembershipRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.apps, id)
	return nil
}

func (r *MemoryMembershipRepository) FindApproved(ctx context.Context, memberNumber, email string) (*entity.MembershipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.Status != entity.ApplicationStatusApproved {
			continue
		}
		if (memberNumber != "" && app.MemberNumber == memberNumber) ||
			(email != "" && strings.ToLower(app.Email) == email) {
			copy := *app
			return &copy, nil
		}
	}
	return nil, ErrApplicationNotFound
}

func (r *MemoryMembershipRepository) NextMemberSequence(ctx context.Context, year int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequences[year]++
	return r.sequences[year], nil
}

type MemorySaleRepository struct {
	mu    sync.RWMutex
	sales []*entity.Sale
}

func NewMemorySaleRepository() *MemorySaleRepository {
	return &MemorySaleRepository{}
}

func (r *MemorySaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *sale
	copy.Items = append([]entity.SaleItem(nil), sale.Items...)
	r.sales = append(r.sales, &copy)
	return nil
}

func (r *MemorySaleRepository) GetAll(ctx context.Context) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sales := make([]*entity.Sale, 0, len(r.sales))
	for _, sale := range r.sales {
		copy := *sale
		sales = append(sales, &copy)
	}
	return sales, nil
}

func (r *MemorySaleRepository) GetRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sales []*entity.Sale
	for _, sale := range r.sales {
		if !sale.Timestamp.Before(from) && sale.Timestamp.Before(to) {
			copy := *sale
			sales = append(sales, &copy)
		}
	}
	return sales, nil
}

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*entity.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			copy := *user
			return &copy, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, ErrUserNotFound
}
