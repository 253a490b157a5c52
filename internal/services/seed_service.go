package services

import (
	"context"
	"database/sql"
	"fmt"

	intdb "stayscape/internal/db"
	"stayscape/internal/utils"
)

// SeedService bootstraps the schema and loads sample data. All seed inserts
// run inside one transaction, so a partial failure leaves nothing behind.
type SeedService struct {
	DB *sql.DB
}

type seedUser struct {
	firstName, surname, email, phone, role, avatar string
}

type seedProperty struct {
	host          int // index into seedUsers
	name          string
	location      string
	propertyType  string
	pricePerNight string
	description   string
}

var seedPropertyTypes = [][2]string{
	{"Apartment", "A self-contained unit within a larger building."},
	{"House", "A whole house to yourself."},
	{"Studio", "A single open-plan living space."},
}

var seedUsers = []seedUser{
	{"Alice", "Johnson", "alice@example.com", "+44 7000 111111", "host", "https://example.com/images/alice.jpg"},
	{"Bob", "Smith", "bob@example.com", "+44 7000 222222", "guest", "https://example.com/images/bob.jpg"},
	{"Emma", "Davis", "emma@example.com", "+44 7000 333333", "host", "https://example.com/images/emma.jpg"},
	{"Frank", "White", "frank@example.com", "", "guest", ""},
}

var seedProperties = []seedProperty{
	{0, "Modern Apartment in City Center", "London, UK", "Apartment", "120.00", "Description of Modern Apartment in City Center."},
	{0, "Cosy Family House", "Manchester, UK", "House", "150.00", "Description of Cosy Family House."},
	{2, "Seaside Studio Getaway", "Cornwall, UK", "Studio", "95.00", "Description of Seaside Studio Getaway."},
	{2, "Chic Studio Near the Beach", "Brighton, UK", "Studio", "90.00", "Description of Chic Studio Near the Beach."},
}

// Run creates missing tables and seeds them when empty.
func (s SeedService) Run(ctx context.Context) error {
	if err := intdb.CreateSchema(ctx, s.DB); err != nil {
		return err
	}

	var existing int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM property_types`).Scan(&existing); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if existing > 0 {
		utils.LogEvent("", "seed", "skip", "data already present")
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	if err := s.loadData(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	utils.LogEvent("", "seed", "done", "sample data loaded")
	return nil
}

func (s SeedService) loadData(ctx context.Context, tx *sql.Tx) error {
	for _, pt := range seedPropertyTypes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_types (property_type, description) VALUES (?, ?)`,
			pt[0], pt[1]); err != nil {
			return fmt.Errorf("seed property_types: %w", err)
		}
	}

	userIDs := make([]int64, len(seedUsers))
	for i, u := range seedUsers {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (first_name, surname, email, phone_number, role, avatar) VALUES (?, ?, ?, ?, ?, ?)`,
			u.firstName, u.surname, u.email, intdb.NullIfEmpty(u.phone), u.role, intdb.NullIfEmpty(u.avatar))
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if userIDs[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	propertyIDs := make([]int64, len(seedProperties))
	for i, p := range seedProperties {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO properties (host_id, name, location, property_type, price_per_night, description) VALUES (?, ?, ?, ?, ?, ?)`,
			userIDs[p.host], p.name, p.location, p.propertyType, p.pricePerNight, p.description)
		if err != nil {
			return fmt.Errorf("seed properties: %w", err)
		}
		if propertyIDs[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	favourites := [][2]int{{1, 0}, {1, 2}, {3, 2}, {3, 1}}
	for _, f := range favourites {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO favourites (guest_id, property_id) VALUES (?, ?)`,
			userIDs[f[0]], propertyIDs[f[1]]); err != nil {
			return fmt.Errorf("seed favourites: %w", err)
		}
	}

	reviews := []struct {
		guest, property int
		rating          int64
		comment         string
	}{
		{1, 0, 4, "Great location, would stay again."},
		{3, 2, 5, "Perfect seaside escape."},
		{1, 2, 3, "Nice, but a little small."},
	}
	for _, r := range reviews {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reviews (property_id, guest_id, rating, comment) VALUES (?, ?, ?, ?)`,
			propertyIDs[r.property], userIDs[r.guest], r.rating, r.comment); err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
	}

	bookings := []struct {
		guest, property   int
		checkIn, checkOut string
	}{
		{1, 0, "2026-09-10", "2026-09-14"},
		{3, 2, "2026-10-01", "2026-10-05"},
	}
	for _, b := range bookings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bookings (property_id, guest_id, check_in_date, check_out_date) VALUES (?, ?, ?, ?)`,
			propertyIDs[b.property], userIDs[b.guest], b.checkIn, b.checkOut); err != nil {
			return fmt.Errorf("seed bookings: %w", err)
		}
	}

	for i, id := range propertyIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO images (property_id, image_url, alt_text) VALUES (?, ?, ?)`,
			id, fmt.Sprintf("https://example.com/images/property-%d.jpg", i+1),
			seedProperties[i].name); err != nil {
			return fmt.Errorf("seed images: %w", err)
		}
	}

	return nil
}
