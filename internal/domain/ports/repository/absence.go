package repository

import (
	"context"

	"daycare-backend/internal/domain/model"
)

// AbsenceRepository is the port for absence reports.
type AbsenceRepository interface {
	Save(ctx context.Context, tx Tx, a *model.Absence) error
	ListByChild(ctx context.Context, tx Tx, childID string) ([]*model.Absence, error)
}
