package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db}
}

const productColumns = `id, name, description, price, category, image, thc, effects, featured, in_stock, stock, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*entity.Product, error) {
	product := &entity.Product{}
	var thc sql.NullString
	var effects []byte
	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price,
		&product.Category, &product.Image, &thc, &effects, &product.Featured,
		&product.InStock, &product.Stock, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	product.THC = thc.String
	if len(effects) > 0 {
		if err := json.Unmarshal(effects, &product.Effects); err != nil {
			return nil, err
		}
	}
	return product, nil
}

func (r *MySQLProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *MySQLProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *MySQLProductRepository) Create(ctx context.Context, product *entity.Product) error {
	effects, err := json.Marshal(product.Effects)
	if err != nil {
		return err
	}
	query := `INSERT INTO products (id, name, description, price, category, image, thc, effects, featured, in_stock, stock, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, product.ID, product.Name, product.Description,
		product.Price, product.Category, product.Image, product.THC, effects,
		product.Featured, product.InStock, product.Stock, product.CreatedAt)
	return err
}

func (r *MySQLProductRepository) Update(ctx context.Context, product *entity.Product) error {
	effects, err := json.Marshal(product.Effects)
	if err != nil {
		return err
	}
	query := `UPDATE products SET name = ?, description = ?, price = ?, category = ?, image = ?, thc = ?, effects = ?, featured = ?, in_stock = ?, stock = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query, product.Name, product.Description,
		product.Price, product.Category, product.Image, product.THC, effects,
		product.Featured, product.InStock, product.Stock, product.ID)
	return err
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *MySQLProductRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	return err
}
