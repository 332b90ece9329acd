package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"daycare-backend/internal/config"
	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	pg "daycare-backend/internal/infra/db/postgres"
	"daycare-backend/internal/infra/logging"
	"daycare-backend/internal/usecase"
)

func main() {
	// ---- Config ----
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Log, true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	userRepo := pg.NewUserRepo(pool)
	daycareRepo := pg.NewDaycareRepo(pool)
	membershipRepo := pg.NewMembershipRepo(pool)
	codeRepo := pg.NewAccessCodeRepo(pool)
	txManager := pg.NewTxManager(pool)

	authUC := usecase.NewAuthUseCase(userRepo, logger)
	daycareUC := usecase.NewDaycareUseCase(daycareRepo, pg.NewDaycareGroupRepo(pool), membershipRepo, userRepo, logger)
	codeUC := usecase.NewAccessCodeUseCase(
		codeRepo, membershipRepo, userRepo, daycareRepo,
		usecase.NewCodeGenerator(nil), txManager,
		cfg.AccessCodes.MaxGenerateAttempts, logger)

	// If the admin already exists, assume the database is seeded.
	const adminEmail = "admin@example.com"
	if existing, err := userRepo.FindByEmail(ctx, repository.NoTX, adminEmail); err == nil {
		fmt.Printf("admin %s already present (id=%s). No changes.\n", adminEmail, existing.ID)
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Fatalf("lookup admin: %v", err)
	}

	admin, err := authUC.Register(ctx, "Admin", adminEmail, "", "changeme-admin", model.RoleAdmin)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	fmt.Printf("seeded admin: %s (id=%s)\n", admin.Email, admin.ID)

	staff, err := authUC.Register(ctx, "Demo Staff", "staff@example.com", "", "changeme-staff", model.RoleStaff)
	if err != nil {
		log.Fatalf("seed staff: %v", err)
	}
	fmt.Printf("seeded staff: %s (id=%s)\n", staff.Email, staff.ID)

	dc, err := daycareUC.Create(ctx, admin.ID, "Demo Daycare", "999888777", "1 Demo Street")
	if err != nil {
		log.Fatalf("seed daycare: %v", err)
	}
	fmt.Printf("seeded daycare: %s (id=%s)\n", dc.Name, dc.ID)

	code, err := codeUC.Create(ctx, dc.ID, staff.ID, cfg.AccessCodes.DefaultMaxUses, nil)
	if err != nil {
		log.Fatalf("seed access code: %v", err)
	}
	fmt.Printf("seeded access code: %s (max_uses=%d)\n", code.Code, code.MaxUses)

	fmt.Println("✅ Seeding complete.")
}
