package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// AttendanceEventType marks a check-in or check-out.
type AttendanceEventType string

const (
	AttendanceIn  AttendanceEventType = "in"
	AttendanceOut AttendanceEventType = "out"
)

func ParseAttendanceEventType(s string) (AttendanceEventType, error) {
	switch AttendanceEventType(s) {
	case AttendanceIn, AttendanceOut:
		return AttendanceEventType(s), nil
	}
	return "", domain.ErrInvalidArgument
}

// Attendance is a single check-in or check-out event for a child.
type Attendance struct {
	ID          string
	ChildID     string
	EventType   AttendanceEventType
	EventTime   time.Time
	Note        string
	PerformedBy string
	CreatedAt   time.Time
}

func NewAttendance(id, childID string, eventType AttendanceEventType, eventTime time.Time, note, performedBy string) (*Attendance, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if childID == "" || performedBy == "" {
		return nil, domain.ErrInvalidArgument
	}
	if eventType != AttendanceIn && eventType != AttendanceOut {
		return nil, domain.ErrInvalidArgument
	}
	if eventTime.IsZero() {
		eventTime = time.Now()
	}
	return &Attendance{
		ID:          id,
		ChildID:     childID,
		EventType:   eventType,
		EventTime:   eventTime,
		Note:        note,
		PerformedBy: performedBy,
		CreatedAt:   time.Now(),
	}, nil
}
