package repository

import (
	"context"

	"daycare-backend/internal/domain/model"
)

// VacationRepository is the port for vacation reports.
type VacationRepository interface {
	Save(ctx context.Context, tx Tx, v *model.Vacation) error
	ListByChild(ctx context.Context, tx Tx, childID string) ([]*model.Vacation, error)
}
