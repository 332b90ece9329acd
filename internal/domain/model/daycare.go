package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// Daycare is the tenant: the unit of data isolation in the system.
type Daycare struct {
	ID        string
	Name      string
	OrgNumber string
	Address   string
	CreatedAt time.Time
}

func NewDaycare(id, name, orgNumber, address string) (*Daycare, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" || orgNumber == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &Daycare{
		ID:        id,
		Name:      name,
		OrgNumber: orgNumber,
		Address:   address,
		CreatedAt: time.Now(),
	}, nil
}

// DaycareGroup is a named group of children within a daycare.
type DaycareGroup struct {
	ID          string
	DaycareID   string
	Name        string
	Description string
	CreatedAt   time.Time
}

func NewDaycareGroup(id, daycareID, name, description string) (*DaycareGroup, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if daycareID == "" || name == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &DaycareGroup{
		ID:          id,
		DaycareID:   daycareID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}
