package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db}
}

const userColumns = `id, username, password, email, first_name, last_name, created_at`

func scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	user := &entity.User{}
	var email, firstName, lastName sql.NullString
	err := row.Scan(&user.ID, &user.Username, &user.Password, &email, &firstName, &lastName, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.Email = email.String
	user.FirstName = firstName.String
	user.LastName = lastName.String
	return user, nil
}

func (r *MySQLUserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, username, password, email, first_name, last_name, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Password,
		user.Email, user.FirstName, user.LastName, user.CreatedAt)
	return err
}

func (r *MySQLUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
