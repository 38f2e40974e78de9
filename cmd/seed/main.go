package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rentwise/rentwise/config"
	"github.com/rentwise/rentwise/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminID := seedUser(db, "admin", "admin@rentwise.local", "admin123", "Ada", "Admin", "ADMIN")
	ownerID := seedUser(db, "landlord", "landlord@rentwise.local", "password123", "Lana", "Lord", "STANDARD")

	var propertyID int64
	err = db.QueryRow(`
		INSERT INTO properties (name, address, city, state, zip_code, type, bedrooms, bathrooms, rent_amount, status, description, user_id)
		VALUES ('Sunset Apartments', '12 Sunset Blvd', 'Springfield', 'IL', '62701', 'APARTMENT', 2, 1, 1250.00, 'AVAILABLE', 'Demo property', $1)
		ON CONFLICT DO NOTHING
		RETURNING id
	`, ownerID).Scan(&propertyID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Fatalf("failed to seed property: %v", err)
	}
	if propertyID != 0 {
		fmt.Printf("seeded property: id=%d owner=%d\n", propertyID, ownerID)
	}

	fmt.Printf("seeded users: admin=%d landlord=%d\n", adminID, ownerID)
}

func seedUser(db *sql.DB, username, email, password, first, last, role string) int64 {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role
		RETURNING id
	`, username, email, hash, first, last, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s role=%s\n", id, username, password, role)
	return id
}
