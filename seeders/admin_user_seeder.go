package seeders

import (
	"context"
	"fmt"
	"log"

	"gearguard/internal/entities"
	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

const adminEmail = "admin@gearguard.local"

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", adminEmail).Scan(&existingID)
	if err == nil {
		log.Println("  - admin user already exists, skipping")
		return nil
	}

	hash, err := utils.HashPassword("admin")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (email, password_hash, name, role) VALUES ($1, $2, $3, $4)",
		adminEmail, hash, "Administrator", entities.RoleAdmin,
	)
	if err != nil {
		return err
	}

	log.Printf("  - admin user %q created (change the default password)", adminEmail)
	return nil
}
