package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kumasoglu/tekstil-api/internal/infrastructure/postgres"
	"github.com/kumasoglu/tekstil-api/pkg/config"
)

// Applies migrations/schema.sql to the configured database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Printf("connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	path := "migrations/schema.sql"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	sqlFile, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("read %s: %v\n", path, err)
		os.Exit(1)
	}

	if _, err := pool.Exec(ctx, string(sqlFile)); err != nil {
		fmt.Printf("migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("migration applied")
}
