package main

import (
	"flag"
	"log"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	runTeams := flag.Bool("teams", false, "seed the default maintenance teams")
	runAdmin := flag.Bool("admin", false, "seed the initial admin user")
	runAll := flag.Bool("all", false, "run every seeder")

	flag.Parse()

	if !*runTeams && !*runAdmin && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runTeams || *runAll {
		seeders.SeedTeams(db)
	}
	if *runAdmin || *runAll {
		seeders.SeedAdmin(db)
	}

	log.Println("seeding finished")
}
