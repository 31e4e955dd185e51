package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Image       string          `json:"image"`
	THC         string          `json:"thc,omitempty"`
	Effects     []string        `json:"effects,omitempty"`
	Featured    bool            `json:"featured"`
	InStock     bool            `json:"in_stock"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

/*
Mysql Table

CREATE TABLE products (
	id VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	price DECIMAL(10,2) NOT NULL,
	category VARCHAR(100) NOT NULL,
	image TEXT NOT NULL,
	thc VARCHAR(50),
	effects JSON,
	featured BOOLEAN DEFAULT FALSE,
	in_stock BOOLEAN DEFAULT TRUE,
	stock INT DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
*/
