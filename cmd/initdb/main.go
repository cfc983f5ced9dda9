package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/example/rms/internal/config"
	"github.com/example/rms/internal/database"
)

func main() {
	cfg := config.Load()

	if err := run(context.Background(), cfg); err != nil {
		fmt.Println("An error occurred:", err)
		os.Exit(1)
	}
	fmt.Printf("Database initialized successfully from %s.\n", cfg.SchemaPath)
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := database.EnsureDatabase(cfg.DatabaseURL); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.ApplySchemaFile(ctx, db, cfg.SchemaPath)
}
