package repository

import (
	"context"

	"daycare-backend/internal/domain/model"
)

// MembershipRepository owns the guardian-daycare relation. The relation is
// append-only and idempotent: Link is a no-op when the pair already exists.
type MembershipRepository interface {
	IsLinked(ctx context.Context, tx Tx, guardianID, daycareID string) (bool, error)
	Link(ctx context.Context, tx Tx, guardianID, daycareID string) error
	ListDaycaresByGuardian(ctx context.Context, tx Tx, guardianID string) ([]*model.Daycare, error)
}
