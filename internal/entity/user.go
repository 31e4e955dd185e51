package entity

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username" validate:"required"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

/*
Mysql Table

CREATE TABLE users (
	id VARCHAR(64) PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	email VARCHAR(255),
	first_name VARCHAR(100),
	last_name VARCHAR(100),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
*/
