package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// Vacation is a reported vacation period for a child.
type Vacation struct {
	ID         string
	ChildID    string
	ReportedBy string
	StartDate  time.Time
	EndDate    time.Time
	Note       string
	CreatedAt  time.Time
}

func NewVacation(id, childID, reportedBy string, startDate, endDate time.Time, note string) (*Vacation, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if childID == "" || reportedBy == "" {
		return nil, domain.ErrInvalidArgument
	}
	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return nil, domain.ErrInvalidArgument
	}
	return &Vacation{
		ID:         id,
		ChildID:    childID,
		ReportedBy: reportedBy,
		StartDate:  startDate,
		EndDate:    endDate,
		Note:       note,
		CreatedAt:  time.Now(),
	}, nil
}
