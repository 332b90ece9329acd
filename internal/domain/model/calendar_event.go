package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// CalendarEvent is an event in a daycare's calendar. A nil GroupID means the
// event applies to the whole daycare.
type CalendarEvent struct {
	ID          string
	DaycareID   string
	GroupID     *string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCalendarEvent(id, daycareID string, groupID *string, title string, startTime time.Time, createdBy string) (*CalendarEvent, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if daycareID == "" || title == "" || createdBy == "" {
		return nil, domain.ErrInvalidArgument
	}
	if startTime.IsZero() {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &CalendarEvent{
		ID:        id,
		DaycareID: daycareID,
		GroupID:   groupID,
		Title:     title,
		StartTime: startTime,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch bumps UpdatedAt after a mutation.
func (e *CalendarEvent) Touch() { e.UpdatedAt = time.Now() }
