package repository

import (
	"context"

	"daycare-backend/internal/domain/model"
)

// AccessCodeRepository is the port for the access code store. The code
// string is the natural key; the store enforces its uniqueness.
type AccessCodeRepository interface {
	// Create persists a new code. A duplicate code string fails with
	// domain.ErrAlreadyExists.
	Create(ctx context.Context, tx Tx, code *model.AccessCode) error
	// FindByCode returns the code record or domain.ErrNotFound.
	FindByCode(ctx context.Context, tx Tx, code string) (*model.AccessCode, error)
	// Consume atomically increments used_count by one and flips active to
	// false when the new count reaches max_uses, guarded by
	// used_count < max_uses. It fails with domain.ErrCodeExhausted when no
	// capacity remains. This is the single serialization point for
	// concurrent redemptions of the same code.
	Consume(ctx context.Context, tx Tx, code string) error
	// Deactivate turns a code off ahead of exhaustion or expiry.
	Deactivate(ctx context.Context, tx Tx, code string) error
	// ListByDaycare returns all codes issued for a daycare.
	ListByDaycare(ctx context.Context, tx Tx, daycareID string) ([]*model.AccessCode, error)
}
