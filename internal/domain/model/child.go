package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// Child belongs to at most one daycare group. Guardianship is a separate
// many-to-many relation owned by the child repository.
type Child struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	GroupID     *string
	Active      bool
	Allergies   string
	Medications string
	Note        string
	CreatedAt   time.Time
}

func NewChild(id, firstName, lastName string, dateOfBirth *time.Time) (*Child, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if firstName == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &Child{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dateOfBirth,
		Active:      true,
		CreatedAt:   time.Now(),
	}, nil
}
