//go:build !integration

package model_test

import (
	"errors"
	"testing"
	"time"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
)

func TestNewAccessCode(t *testing.T) {
	t.Run("fresh code starts unused and active", func(t *testing.T) {
		ac, err := model.NewAccessCode("id-1", "ABC123", "dc-1", "staff-1", 100, nil)
		if err != nil {
			t.Fatalf("NewAccessCode failed: %v", err)
		}
		if ac.UsedCount != 0 {
			t.Errorf("expected UsedCount 0, got %d", ac.UsedCount)
		}
		if !ac.Active {
			t.Error("expected new code to be active")
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := []struct {
			name              string
			code, dc, issuer  string
			maxUses           int
		}{
			{"empty code", "", "dc-1", "staff-1", 10},
			{"empty daycare", "ABC123", "", "staff-1", 10},
			{"empty issuer", "ABC123", "dc-1", "", 10},
			{"zero max uses", "ABC123", "dc-1", "staff-1", 0},
			{"negative max uses", "ABC123", "dc-1", "staff-1", -5},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := model.NewAccessCode("", tc.code, tc.dc, tc.issuer, tc.maxUses, nil); !errors.Is(err, domain.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
			})
		}
	})
}

func TestAccessCode_Redeemable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	mk := func(t *testing.T, maxUses int, expiresAt *time.Time) *model.AccessCode {
		t.Helper()
		ac, err := model.NewAccessCode("", "ABC123", "dc-1", "staff-1", maxUses, expiresAt)
		if err != nil {
			t.Fatalf("NewAccessCode failed: %v", err)
		}
		return ac
	}

	t.Run("fresh code is redeemable", func(t *testing.T) {
		if err := mk(t, 1, nil).Redeemable(now); err != nil {
			t.Errorf("expected redeemable, got %v", err)
		}
	})

	t.Run("deactivated code wins over expiry", func(t *testing.T) {
		ac := mk(t, 2, &past)
		ac.Active = false
		ac.UsedCount = 1
		if err := ac.Redeemable(now); !errors.Is(err, domain.ErrInvalidCode) {
			t.Errorf("expected ErrInvalidCode, got %v", err)
		}
	})

	t.Run("expired wins over exhausted", func(t *testing.T) {
		ac := mk(t, 1, &past)
		ac.UsedCount = 1
		if err := ac.Redeemable(now); !errors.Is(err, domain.ErrCodeExpired) {
			t.Errorf("expected ErrCodeExpired, got %v", err)
		}
	})

	t.Run("exhausted code", func(t *testing.T) {
		ac := mk(t, 2, &future)
		ac.UsedCount = 2
		if err := ac.Redeemable(now); !errors.Is(err, domain.ErrCodeExhausted) {
			t.Errorf("expected ErrCodeExhausted, got %v", err)
		}
	})

	t.Run("spent code reports exhausted even after the flag clears", func(t *testing.T) {
		ac := mk(t, 2, &future)
		ac.UsedCount = 2
		ac.Active = false
		if err := ac.Redeemable(now); !errors.Is(err, domain.ErrCodeExhausted) {
			t.Errorf("expected ErrCodeExhausted, got %v", err)
		}
	})

	t.Run("nil expiry never expires", func(t *testing.T) {
		ac := mk(t, 1, nil)
		if ac.Expired(now.Add(100 * 365 * 24 * time.Hour)) {
			t.Error("code without expiry must never expire")
		}
	})
}
