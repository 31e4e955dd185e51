package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusPendingPayment   OrderStatus = "pending_payment"
	OrderStatusPaymentSubmitted OrderStatus = "payment_submitted"
	OrderStatusPaymentConfirmed OrderStatus = "payment_confirmed"
	OrderStatusCancelled        OrderStatus = "cancelled"
	OrderStatusFulfilled        OrderStatus = "fulfilled"
)

// Valid reports whether s is one of the recognized order states. Every
// transition goes through this check, including the EFT admin path.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPendingPayment, OrderStatusPaymentSubmitted,
		OrderStatusPaymentConfirmed, OrderStatusCancelled, OrderStatusFulfilled:
		return true
	}
	return false
}

const PaymentMethodEFT = "EFT"

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id,omitempty"` // empty for guest checkouts
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	CustomerInfo  CustomerInfo    `json:"customer_info"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	// OrderReference is the caller-supplied human-readable reference used to
	// track EFT payments. Stored as a first-class indexed column.
	OrderReference string      `json:"order_reference,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// OrderItem captures the unit price at order time. Historical orders are
// immutable to later catalog price changes.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

/*
Mysql Tables

CREATE TABLE orders (
	id VARCHAR(64) PRIMARY KEY,
	user_id VARCHAR(64),
	total DECIMAL(10,2) NOT NULL,
	status VARCHAR(32) NOT NULL,
	customer_info JSON,
	payment_method VARCHAR(32),
	order_reference VARCHAR(100),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	INDEX order_reference_idx (order_reference)
);

CREATE TABLE order_items (
	id VARCHAR(64) PRIMARY KEY,
	order_id VARCHAR(64) NOT NULL REFERENCES orders(id),
	product_id VARCHAR(64) NOT NULL,
	quantity INT NOT NULL,
	price DECIMAL(10,2) NOT NULL
);
*/
