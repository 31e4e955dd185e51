package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable point-of-sale transaction record. Items are a
// snapshot; each one triggers an independent stock decrement on the catalog.
type Sale struct {
	ID            string          `json:"id"`
	Total         decimal.Decimal `json:"total"`
	CustomerName  string          `json:"customer_name,omitempty"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	Items         []SaleItem      `json:"items" validate:"required,min=1"`
	Timestamp     time.Time       `json:"timestamp"`
}

type SaleItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
}

type SalesStats struct {
	TodayTotal  decimal.Decimal `json:"todayTotal"`
	TodayCount  int             `json:"todayCount"`
	AverageSale decimal.Decimal `json:"averageSale"`
}

/*
Mysql Table

CREATE TABLE sales (
	id VARCHAR(64) PRIMARY KEY,
	total DECIMAL(10,2) NOT NULL,
	customer_name VARCHAR(255),
	payment_method VARCHAR(50) NOT NULL,
	items JSON NOT NULL,
	timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
*/
