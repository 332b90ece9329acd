package repository

import (
	"context"

	"daycare-backend/internal/domain/model"
)

// DaycareRepository is the port for daycare (tenant) records.
type DaycareRepository interface {
	Save(ctx context.Context, tx Tx, d *model.Daycare) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Daycare, error)
}

// DaycareGroupRepository is the port for groups within a daycare.
type DaycareGroupRepository interface {
	Save(ctx context.Context, tx Tx, g *model.DaycareGroup) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.DaycareGroup, error)
	ListByDaycare(ctx context.Context, tx Tx, daycareID string) ([]*model.DaycareGroup, error)
}
