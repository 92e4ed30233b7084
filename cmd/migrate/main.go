// migrate applies pending schema migrations and exits. Useful for deploys
// where the API runs with DB_AUTO_MIGRATE disabled.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mtechuganda/backoffice-api/internal/infrastructure/postgres"
	"github.com/mtechuganda/backoffice-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "apply migrations: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("migrations applied")
}
