package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/akilimali/parapheur/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn       = flag.String("dsn", "", "Database connection string")
		all       = flag.Bool("all", false, "Run all database seeders")
		staff     = flag.Bool("staff", false, "Seed staff profiles")
		templates = flag.Bool("templates", false, "Seed template files into blob storage")
		dir       = flag.String("dir", "assets/templates", "Template directory for -templates")
		file      = flag.String("file", "", "External seed file (overrides embedded)")
		list      = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		fmt.Println("  - templates: Seeds template PDFs into blob storage (-dir)")
		return
	}

	ctx := context.Background()

	if *templates {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := seedTemplates(ctx, &cfg.Storage, *dir, logger); err != nil {
			log.Fatalf("template seeding failed: %v", err)
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *staff:
		if *file != "" {
			if seeder, ok := getSeeder("staff"); ok {
				seeder.(*StaffSeeder).SetFile(*file)
			}
		}
		if err := runSeeder(ctx, db, "staff"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("staff seeded successfully")

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-staff|-templates] [-dir <path>] [-file <path>] [-list]")
		flag.PrintDefaults()
	}
}
