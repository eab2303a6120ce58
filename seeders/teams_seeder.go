package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var defaultTeams = []struct {
	Name        string
	Description string
}{
	{"Mechanical", "Pumps, presses, CNC and other mechanical assets"},
	{"Electrical", "Electrical installations and control cabinets"},
	{"Facilities", "Buildings, HVAC and general infrastructure"},
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, team := range defaultTeams {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM maintenance_teams WHERE name = $1", team.Name).Scan(&existingID)
		if err == nil {
			log.Printf("  - team %q already exists, skipping", team.Name)
			continue
		}

		_, err = db.Exec(ctx,
			"INSERT INTO maintenance_teams (name, description) VALUES ($1, $2)",
			team.Name, team.Description,
		)
		if err != nil {
			return err
		}
		log.Printf("  - team %q created", team.Name)
	}
	return nil
}
