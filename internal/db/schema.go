package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Table DDL in foreign-key dependency order. MySQL DDL auto-commits, so the
// statements run sequentially outside any transaction; seed data is a
// different story (see services.SeedService).
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS property_types (
		property_type VARCHAR(50) PRIMARY KEY,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		surname VARCHAR(50) NOT NULL,
		email VARCHAR(50) NOT NULL,
		phone_number VARCHAR(15),
		role ENUM('host', 'guest') NOT NULL DEFAULT 'guest',
		avatar VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		property_id INT AUTO_INCREMENT PRIMARY KEY,
		host_id INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		location VARCHAR(50) NOT NULL,
		property_type VARCHAR(50) NOT NULL,
		price_per_night DECIMAL(10,2) NOT NULL,
		description TEXT,
		FOREIGN KEY (host_id) REFERENCES users(user_id),
		FOREIGN KEY (property_type) REFERENCES property_types(property_type)
	)`,
	`CREATE TABLE IF NOT EXISTS favourites (
		favourite_id INT AUTO_INCREMENT PRIMARY KEY,
		guest_id INT NOT NULL,
		property_id INT NOT NULL,
		FOREIGN KEY (guest_id) REFERENCES users(user_id),
		FOREIGN KEY (property_id) REFERENCES properties(property_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id INT AUTO_INCREMENT PRIMARY KEY,
		property_id INT NOT NULL,
		guest_id INT NOT NULL,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (property_id) REFERENCES properties(property_id),
		FOREIGN KEY (guest_id) REFERENCES users(user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id INT AUTO_INCREMENT PRIMARY KEY,
		property_id INT NOT NULL,
		guest_id INT NOT NULL,
		check_in_date DATE NOT NULL,
		check_out_date DATE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (property_id) REFERENCES properties(property_id),
		FOREIGN KEY (guest_id) REFERENCES users(user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		image_id INT AUTO_INCREMENT PRIMARY KEY,
		property_id INT NOT NULL,
		image_url VARCHAR(255) NOT NULL,
		alt_text VARCHAR(255) NOT NULL,
		FOREIGN KEY (property_id) REFERENCES properties(property_id)
	)`,
}

// CreateSchema creates all tables when missing.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
