package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrApplicationNotFound = errors.New("membership application not found")
	ErrEFTOrderNotFound    = errors.New("EFT order not found")
	ErrUserNotFound        = errors.New("user not found")
)

type ProductRepository interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type CartRepository interface {
	GetByUser(ctx context.Context, userID string) ([]*entity.CartItem, error)
	FindLine(ctx context.Context, userID, productID string) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.CartItem, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, userID string) error
}

type OrderRepository interface {
	// Create persists the order and its items as a single atomic write.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	// GetByReference resolves an order by its EFT order reference.
	GetByReference(ctx context.Context, reference string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error)
}

type MembershipRepository interface {
	Create(ctx context.Context, app *entity.MembershipApplication) error
	GetAll(ctx context.Context) ([]*entity.MembershipApplication, error)
	GetByID(ctx context.Context, id string) (*entity.MembershipApplication, error)
	Update(ctx context.Context, app *entity.MembershipApplication) error
	Delete(ctx context.Context, id string) error
	// FindApproved looks up an approved application by exact member number or
	// by lower-cased email. Non-approved applications are never returned.
	FindApproved(ctx context.Context, memberNumber, email string) (*entity.MembershipApplication, error)
	// NextMemberSequence atomically increments and returns the member-number
	// sequence for the given year.
	NextMemberSequence(ctx context.Context, year int) (int, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetAll(ctx context.Context) ([]*entity.Sale, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Store bundles the per-entity repositories. Two implementations exist: the
// MySQL-backed store used in production and an in-memory store used for tests
// and local development, selected by STORE_DRIVER.
type Store struct {
	Products ProductRepository
	Carts    CartRepository
	Orders   OrderRepository
	Members  MembershipRepository
	Sales    SaleRepository
	Users    UserRepository
}
