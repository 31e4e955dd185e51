package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(100) NOT NULL,
		image TEXT,
		thc VARCHAR(50),
		effects JSON,
		featured BOOLEAN DEFAULT FALSE,
		in_stock BOOLEAN DEFAULT TRUE,
		stock INT DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id VARCHAR(64) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		product_id VARCHAR(64) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX cart_user_idx (user_id)
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(64) PRIMARY KEY,
		user_id VARCHAR(64),
		total DECIMAL(10,2) NOT NULL,
		status VARCHAR(32) NOT NULL,
		customer_info JSON,
		payment_method VARCHAR(32),
		order_reference VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX order_reference_idx (order_reference),
		INDEX order_user_idx (user_id)
	);`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id VARCHAR(64) PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		product_id VARCHAR(64) NOT NULL,
		quantity INT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS membership_applications (
		id VARCHAR(64) PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		date_of_birth VARCHAR(20) NOT NULL,
		id_number VARCHAR(50) NOT NULL,
		address TEXT,
		emergency_contact VARCHAR(100),
		emergency_phone VARCHAR(50),
		medical_conditions TEXT,
		preferred_products JSON,
		id_document_url VARCHAR(512),
		profile_picture_url VARCHAR(512),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		reviewed_at TIMESTAMP NULL,
		reviewed_by VARCHAR(100),
		notes TEXT,
		member_number VARCHAR(20),
		membership_tier VARCHAR(20),
		member_since TIMESTAMP NULL,
		expiry_date TIMESTAMP NULL,
		qr_code_data TEXT,
		card_generated BOOLEAN DEFAULT FALSE,
		INDEX member_number_idx (member_number),
		INDEX application_status_idx (status)
	);`,
	`CREATE TABLE IF NOT EXISTS member_sequences (
		year INT PRIMARY KEY,
		counter INT NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS sales (
		id VARCHAR(64) PRIMARY KEY,
		total DECIMAL(10,2) NOT NULL,
		customer_name VARCHAR(255),
		payment_method VARCHAR(50) NOT NULL,
		items JSON NOT NULL,
		timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX sale_timestamp_idx (timestamp)
	);`,
}

// AutoMigrate creates every table if it does not exist, retrying each
// statement a few times to ride out a database that is still starting.
func AutoMigrate(db *sql.DB, retries int) error {
	for _, query := range tables {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
