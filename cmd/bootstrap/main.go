// Command bootstrap creates a tenant and its first admin user. Run once
// per tenant; subsequent users are managed through the API.
// Usage: go run ./cmd/bootstrap -tenant "Acme Traders" -slug acme -gstin 27AAAAA0000A1Z5 -state Maharashtra -email admin@acme.in -password secret123
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"gstdesk/internal/config"
	"gstdesk/internal/domain"
	"gstdesk/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	tenantName := flag.String("tenant", "", "tenant display name")
	slug := flag.String("slug", "", "tenant slug used at login")
	gstin := flag.String("gstin", "", "tenant GSTIN")
	state := flag.String("state", "", "tenant state (seller state for jurisdiction classification)")
	email := flag.String("email", "", "admin user email")
	password := flag.String("password", "", "admin user password")
	fullName := flag.String("name", "Administrator", "admin user full name")
	flag.Parse()

	if *tenantName == "" || *slug == "" || *state == "" || *email == "" || *password == "" {
		flag.Usage()
		return fmt.Errorf("tenant, slug, state, email, and password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)

	ctx := context.Background()

	tenant := &domain.Tenant{
		Name:     *tenantName,
		Slug:     *slug,
		GSTIN:    *gstin,
		State:    *state,
		IsActive: true,
	}
	if err := tenantRepo.Create(ctx, tenant); err != nil {
		return fmt.Errorf("creating tenant: %w", err)
	}
	log.Printf("Created tenant %s (%s)", tenant.Name, tenant.ID)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		TenantID:     tenant.ID,
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *fullName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	log.Printf("Created admin user %s (%s)", user.Email, user.ID)

	return nil
}
