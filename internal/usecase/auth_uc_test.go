//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/usecase"
)

func TestAuthUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("register hashes the password", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewAuthUseCase(users, newTestLogger())

		u, err := uc.Register(ctx, "Kari Nordmann", "kari@example.com", "", "correct horse", model.RoleGuardian)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if u.PasswordHash == "" || u.PasswordHash == "correct horse" {
			t.Error("password must be stored as a hash")
		}

		saved, err := users.FindByEmail(ctx, nil, "kari@example.com")
		if err != nil {
			t.Fatalf("registered user not persisted: %v", err)
		}
		if saved.Role != model.RoleGuardian {
			t.Errorf("expected guardian role, got %s", saved.Role)
		}
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(NewMockUserRepo(), newTestLogger())
		_, err := uc.Register(ctx, "Kari", "kari@example.com", "", "short", model.RoleGuardian)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("login round-trip", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewAuthUseCase(users, newTestLogger())

		if _, err := uc.Register(ctx, "Kari", "kari@example.com", "", "correct horse", model.RoleGuardian); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		u, err := uc.Login(ctx, "kari@example.com", "correct horse")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if u.Email != "kari@example.com" {
			t.Errorf("unexpected user %s", u.Email)
		}

		if _, err := uc.Login(ctx, "kari@example.com", "wrong"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("wrong password: expected ErrUnauthorized, got %v", err)
		}
		// An unknown email must be indistinguishable from a bad password.
		if _, err := uc.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("unknown email: expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("change password requires the current one", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewAuthUseCase(users, newTestLogger())

		u, err := uc.Register(ctx, "Kari", "kari@example.com", "", "correct horse", model.RoleGuardian)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if err := uc.ChangePassword(ctx, u.ID, "wrong", "a new password"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if err := uc.ChangePassword(ctx, u.ID, "correct horse", "a new password"); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}
		if _, err := uc.Login(ctx, "kari@example.com", "a new password"); err != nil {
			t.Errorf("login with new password failed: %v", err)
		}
	})
}
