package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

type MySQLCartRepository struct {
	db *sql.DB
}

func NewMySQLCartRepository(db *sql.DB) *MySQLCartRepository {
	return &MySQLCartRepository{db}
}

func (r *MySQLCartRepository) GetByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	query := `SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE user_id = ?`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.CartItem
	for rows.Next() {
		item := &entity.CartItem{}
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MySQLCartRepository) FindLine(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	query := `SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE user_id = ? AND product_id = ?`
	item := &entity.CartItem{}
	err := r.db.QueryRowContext(ctx, query, userID, productID).
		Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MySQLCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	query := `INSERT INTO cart_items (id, user_id, product_id, quantity, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt)
	return err
}

func (r *MySQLCartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.CartItem, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE cart_items SET quantity = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE id = ?`
	item := &entity.CartItem{}
	err = r.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MySQLCartRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = ?`, id)
	return err
}

func (r *MySQLCartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
