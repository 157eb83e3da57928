package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/furnistore/backend/config"
	"github.com/furnistore/backend/pkg/helpers"
)

type demoProduct struct {
	name, desc, category, price string
	discount, stock             int
}

var demoProducts = []demoProduct{
	{"Oslo 3-Seater Sofa", "Scandinavian three-seater with oak legs and linen upholstery.", "sofa", "1299.00", 10, 8},
	{"Luna Queen Bed", "Queen bed frame with upholstered headboard.", "bed", "899.00", 0, 12},
	{"Nordic Dining Set", "Six-seat dining table in solid ash.", "dining", "1599.00", 15, 4},
	{"Wicker Accent Chair", "Hand-woven rattan chair with cushion.", "chair", "349.00", 0, 20},
	{"Marble Coffee Table", "Round coffee table with a carrara marble top.", "table", "549.00", 5, 10},
	{"Studio Wall Shelves", "Modular wall shelving, five-tier walnut finish.", "shelves", "279.00", 0, 25},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@furnistore.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, role, is_verified, addresses)
		VALUES ($1, $2, $3, 'admin', TRUE, '[]'::jsonb)
		ON CONFLICT (email) DO UPDATE SET role = 'admin'
		RETURNING id
	`, email, hash, "Store Admin").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	for _, p := range demoProducts {
		if _, err := db.Exec(`
			INSERT INTO products (name, description, category, price, discount, stock, images, ratings)
			SELECT $1, $2, $3, $4::numeric, $5, $6, '[]'::jsonb, 0
			WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
		`, p.name, p.desc, p.category, p.price, p.discount, p.stock); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d demo products\n", len(demoProducts))
}
