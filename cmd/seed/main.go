package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/meridianbi/insight-api/internal/config"
	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/logger"
	"github.com/meridianbi/insight-api/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := seed.DefaultConfig()
	employees := flag.Int("employees", defaults.Employees, "number of employees to generate")
	products := flag.Int("products", defaults.Products, "number of products to generate")
	customers := flag.Int("customers", defaults.Customers, "number of customers to generate")
	sales := flag.Int("sales", defaults.Sales, "number of sales to generate")
	migrate := flag.Bool("migrate", false, "run schema auto-migration before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if *migrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	seeder := seed.NewSeeder(db, seed.Config{
		Employees: *employees,
		Products:  *products,
		Customers: *customers,
		Sales:     *sales,
	}, log)

	return seeder.Run()
}
