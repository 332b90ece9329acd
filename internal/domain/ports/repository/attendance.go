package repository

import (
	"context"
	"time"

	"daycare-backend/internal/domain/model"
)

// AttendanceRepository is the port for check-in/out events.
type AttendanceRepository interface {
	Save(ctx context.Context, tx Tx, a *model.Attendance) error
	// ListByChildAndDay returns events with event_time inside [day, day+24h),
	// ordered by event_time ascending.
	ListByChildAndDay(ctx context.Context, tx Tx, childID string, day time.Time) ([]*model.Attendance, error)
	// LastEvent returns the most recent event for a child, or
	// domain.ErrNotFound when none exist.
	LastEvent(ctx context.Context, tx Tx, childID string) (*model.Attendance, error)
}
