package model

import (
	"time"

	"daycare-backend/internal/domain"
)

// CodeLength is the fixed length of a generated access code.
const CodeLength = 6

// CodeAlphabet is the symbol set access codes are drawn from.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AccessCode is a short shareable code that onboards a guardian into a
// daycare. Code, DaycareID, IssuedBy and MaxUses are immutable after
// creation; UsedCount and Active are advanced only by the redemption flow.
type AccessCode struct {
	ID        string
	Code      string
	DaycareID string
	IssuedBy  string
	MaxUses   int
	UsedCount int
	Active    bool
	CreatedAt time.Time
	ExpiresAt *time.Time // nil means the code never expires
}

func NewAccessCode(id, code, daycareID, issuedBy string, maxUses int, expiresAt *time.Time) (*AccessCode, error) {
	if code == "" || daycareID == "" || issuedBy == "" {
		return nil, domain.ErrInvalidArgument
	}
	if maxUses <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	return &AccessCode{
		ID:        id,
		Code:      code,
		DaycareID: daycareID,
		IssuedBy:  issuedBy,
		MaxUses:   maxUses,
		UsedCount: 0,
		Active:    true,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}, nil
}

// Expired reports whether the code's expiry has passed. An expired code is
// never redeemable even if the stored Active flag is still true.
func (c *AccessCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// Redeemable returns nil when the code can still be redeemed, or the first
// failing condition in validation order: inactive, expired, exhausted.
// Exhaustion clears Active as a side effect of the final consume, so a spent
// code still reports ErrCodeExhausted rather than ErrInvalidCode; only manual
// deactivation yields ErrInvalidCode.
func (c *AccessCode) Redeemable(now time.Time) error {
	if !c.Active && c.UsedCount < c.MaxUses {
		return domain.ErrInvalidCode
	}
	if c.Expired(now) {
		return domain.ErrCodeExpired
	}
	if c.UsedCount >= c.MaxUses {
		return domain.ErrCodeExhausted
	}
	return nil
}
