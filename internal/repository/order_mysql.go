package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db}
}

const orderColumns = `id, user_id, total, status, customer_info, payment_method, order_reference, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*entity.Order, error) {
	order := &entity.Order{}
	var userID, paymentMethod, reference sql.NullString
	var customerInfo []byte
	err := row.Scan(&order.ID, &userID, &order.Total, &order.Status, &customerInfo,
		&paymentMethod, &reference, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.UserID = userID.String
	order.PaymentMethod = paymentMethod.String
	order.OrderReference = reference.String
	if len(customerInfo) > 0 {
		if err := json.Unmarshal(customerInfo, &order.CustomerInfo); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (r *MySQLOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	customerInfo, err := json.Marshal(order.CustomerInfo)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	orderQuery := `INSERT INTO orders (id, user_id, total, status, customer_info, payment_method, order_reference, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	userID := sql.NullString{String: order.UserID, Valid: order.UserID != ""}
	_, err = tx.ExecContext(ctx, orderQuery, order.ID, userID, order.Total, order.Status,
		customerInfo, order.PaymentMethod, order.OrderReference, order.CreatedAt)
	if err != nil {
		tx.Rollback()
		return err
	}

	if len(order.Items) > 0 {
		itemQuery := `INSERT INTO order_items (id, order_id, product_id, quantity, price) VALUES `
		var values []interface{}
		for _, item := range order.Items {
			itemQuery += "(?, ?, ?, ?, ?),"
			values = append(values, item.ID, order.ID, item.ProductID, item.Quantity, item.Price)
		}
		itemQuery = itemQuery[:len(itemQuery)-1]

		_, err = tx.ExecContext(ctx, itemQuery, values...)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *MySQLOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *MySQLOrderRepository) GetByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = ?`, userID)
}

func (r *MySQLOrderRepository) GetByReference(ctx context.Context, reference string) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_reference = ?`, reference)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEFTOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r *MySQLOrderRepository) ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	args := make([]interface{}, len(statuses))
	for i, s := range statuses {
		args[i] = s
	}
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders WHERE status IN (`+placeholders+`)`, args...)
}

func (r *MySQLOrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *MySQLOrderRepository) loadItems(ctx context.Context, order *entity.Order) error {
	query := `SELECT id, order_id, product_id, quantity, price FROM order_items WHERE order_id = ?`
	rows, err := r.db.QueryContext(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		item := entity.OrderItem{}
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}
