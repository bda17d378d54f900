package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/attager/a2a-threat-center/internal/config"
	"github.com/attager/a2a-threat-center/internal/repository/sqlstore"
	"github.com/attager/a2a-threat-center/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "populate an empty store with the demo roster and packet history")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Connect to database
	db, err := sqlstore.New(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Printf("Connected to %s database successfully\n", cfg.Database.Driver)

	migrationsFS, err := migrations.GetFS(cfg.Database.Driver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load migrations: %v\n", err)
		os.Exit(1)
	}

	applied, err := sqlstore.RunMigrations(db, cfg.Database.Driver, migrationsFS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}
	if applied == 0 {
		fmt.Println("Database is up to date")
	} else {
		fmt.Printf("Applied %d migration(s)\n", applied)
	}

	if !*seed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded, err := sqlstore.Seed(ctx, db, cfg.Database.Driver, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
		os.Exit(1)
	}
	if seeded {
		fmt.Println("Seeded demo data")
	} else {
		fmt.Println("Store already has agents, skipping seed")
	}
}
