package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

type MySQLSaleRepository struct {
	db *sql.DB
}

func NewMySQLSaleRepository(db *sql.DB) *MySQLSaleRepository {
	return &MySQLSaleRepository{db}
}

func (r *MySQLSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return err
	}
	query := `INSERT INTO sales (id, total, customer_name, payment_method, items, timestamp) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, sale.ID, sale.Total, sale.CustomerName,
		sale.PaymentMethod, items, sale.Timestamp)
	return err
}

func (r *MySQLSaleRepository) GetAll(ctx context.Context) ([]*entity.Sale, error) {
	return r.querySales(ctx, `SELECT id, total, customer_name, payment_method, items, timestamp FROM sales`)
}

func (r *MySQLSaleRepository) GetRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	query := `SELECT id, total, customer_name, payment_method, items, timestamp FROM sales WHERE timestamp >= ? AND timestamp < ?`
	return r.querySales(ctx, query, from, to)
}

func (r *MySQLSaleRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]*entity.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		var customerName sql.NullString
		var items []byte
		err := rows.Scan(&sale.ID, &sale.Total, &customerName, &sale.PaymentMethod, &items, &sale.Timestamp)
		if err != nil {
			return nil, err
		}
		sale.CustomerName = customerName.String
		if err := json.Unmarshal(items, &sale.Items); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}
