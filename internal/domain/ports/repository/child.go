package repository

import (
	"context"

	"daycare-backend/internal/domain/model"
)

// ChildRepository is the port for child records and the guardian-child
// relation.
type ChildRepository interface {
	Save(ctx context.Context, tx Tx, c *model.Child) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Child, error)
	ListByGuardian(ctx context.Context, tx Tx, guardianID string) ([]*model.Child, error)
	ListByGroup(ctx context.Context, tx Tx, groupID string) ([]*model.Child, error)
	// LinkGuardian is idempotent, like the daycare membership link.
	LinkGuardian(ctx context.Context, tx Tx, guardianID, childID string) error
}
