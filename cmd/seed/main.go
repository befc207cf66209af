package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ratespot/ratespot/config"
	"github.com/ratespot/ratespot/pkg/helpers"
)

type seedUser struct {
	name    string
	email   string
	role    string
	address string
}

type seedStore struct {
	name       string
	email      string
	address    string
	ownerEmail string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123A!"
	hash, err := helpers.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	seedUsers := []seedUser{
		{"Administrator Example Account", "admin@example.com", "admin", "123 Admin St"},
		{"Jonathan Doe Example Account", "user@example.com", "user", "456 User Ave"},
		{"Jane Smith Example Storefront", "owner@example.com", "store_owner", "789 Owner Blvd"},
	}

	ids := make(map[string]string, len(seedUsers))
	for _, u := range seedUsers {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (name, email, password_hash, role, address)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.name, u.email, hash, u.role, u.address).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		ids[u.email] = id
		fmt.Printf("seeded user: id=%s email=%s role=%s password=%s\n", id, u.email, u.role, password)
	}

	seedStores := []seedStore{
		{"Tech Store", "contact@techstore.com", "100 Tech Plaza", "owner@example.com"},
		{"Book Haven", "info@bookhaven.com", "200 Reading Rd", "owner@example.com"},
	}

	storeIDs := make([]string, 0, len(seedStores))
	for _, s := range seedStores {
		var id string
		err := db.QueryRow(`
			INSERT INTO stores (name, email, address, owner_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, s.name, s.email, s.address, ids[s.ownerEmail]).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed store %s: %v", s.name, err)
		}
		storeIDs = append(storeIDs, id)
		fmt.Printf("seeded store: id=%s name=%s\n", id, s.name)
	}

	// Demo ratings from the regular user
	ratings := []struct {
		storeID string
		value   int
	}{
		{storeIDs[0], 5},
		{storeIDs[1], 4},
	}
	for _, r := range ratings {
		if _, err := db.Exec(`
			INSERT INTO ratings (user_id, store_id, rating)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, store_id) DO UPDATE SET rating = EXCLUDED.rating
		`, ids["user@example.com"], r.storeID, r.value); err != nil {
			log.Fatalf("failed to seed rating: %v", err)
		}
	}
	fmt.Println("seeded demo ratings")
}
