// seed creates the initial admin account so a fresh install can log in.
// Username and password come from SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD
// (defaults: admin / admin123 — change the password after first login).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/infrastructure/postgres"
	"github.com/mtechuganda/backoffice-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("load configuration: %v", err)
	}

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatalf("connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fatalf("apply migrations: %v", err)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername(username)
	if err != nil {
		fatalf("look up %s: %v", username, err)
	}
	if existing != nil {
		fmt.Printf("user %q already exists, nothing to do\n", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fatalf("hash password: %v", err)
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         "Administrator",
		Role:         entity.RoleAdmin,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := users.Create(admin); err != nil {
		fatalf("create admin: %v", err)
	}
	if err := users.AppendPasswordHistory(&entity.PasswordHistory{
		ID:           uuid.New().String(),
		UserID:       admin.ID,
		PasswordHash: admin.PasswordHash,
		ChangedBy:    admin.ID,
	}); err != nil {
		fatalf("record password history: %v", err)
	}

	fmt.Printf("admin user %q created\n", username)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
