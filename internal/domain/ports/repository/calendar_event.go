package repository

import (
	"context"
	"time"

	"daycare-backend/internal/domain/model"
)

// CalendarEventRepository is the port for daycare calendar events.
type CalendarEventRepository interface {
	Save(ctx context.Context, tx Tx, e *model.CalendarEvent) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.CalendarEvent, error)
	Delete(ctx context.Context, tx Tx, id string) error
	// ListByDaycareRange returns events starting inside [from, to], ordered
	// by start_time ascending.
	ListByDaycareRange(ctx context.Context, tx Tx, daycareID string, from, to time.Time) ([]*model.CalendarEvent, error)
}
