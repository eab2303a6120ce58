package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedTeams fills the maintenance team reference data.
func SeedTeams(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding maintenance teams...")

	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("failed to seed maintenance teams: %v", err)
	}
	log.Println("maintenance teams seeded")
}

// SeedAdmin creates the initial admin account.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding admin user...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	log.Println("admin user seeded")
}
