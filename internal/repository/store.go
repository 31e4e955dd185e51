package repository

import "database/sql"

// NewMySQLStore wires every repository against the given database handle.
func NewMySQLStore(db *sql.DB) *Store {
	return &Store{
		Products: NewMySQLProductRepository(db),
		Carts:    NewMySQLCartRepository(db),
		Orders:   NewMySQLOrderRepository(db),
		Members:  NewMySQLMembershipRepository(db),
		Sales:    NewMySQLSaleRepository(db),
		Users:    NewMySQLUserRepository(db),
	}
}

// NewMemoryStore builds a store with no external dependencies.
func NewMemoryStore() *Store {
	return &Store{
		Products: NewMemoryProductRepository(),
		Carts:    NewMemoryCartRepository(),
		Orders:   NewMemoryOrderRepository(),
		Members:  NewMemoryMembershipRepository(),
		Sales:    NewMemorySaleRepository(),
		Users:    NewMemoryUserRepository(),
	}
}
