package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// Absence is a reported day of absence for a child.
type Absence struct {
	ID         string
	ChildID    string
	ReportedBy string
	Date       time.Time
	Reason     string
	Note       string
	CreatedAt  time.Time
}

func NewAbsence(id, childID, reportedBy string, date time.Time, reason, note string) (*Absence, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if childID == "" || reportedBy == "" || reason == "" {
		return nil, domain.ErrInvalidArgument
	}
	if date.IsZero() {
		return nil, domain.ErrInvalidArgument
	}
	return &Absence{
		ID:         id,
		ChildID:    childID,
		ReportedBy: reportedBy,
		Date:       date,
		Reason:     reason,
		Note:       note,
		CreatedAt:  time.Now(),
	}, nil
}
