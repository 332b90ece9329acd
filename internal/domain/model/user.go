package model

import (
	"time"

	"daycare-backend/internal/domain"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. Authorization decisions are methods
// on Role so the rules live in one place instead of inline conditionals.
type Role string

const (
	RoleGuardian Role = "guardian"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuardian, RoleStaff, RoleAdmin:
		return Role(s), nil
	}
	return "", domain.ErrInvalidArgument
}

// CanIssueAccessCodes reports whether the role may mint access codes.
func (r Role) CanIssueAccessCodes() bool { return r == RoleStaff || r == RoleAdmin }

// CanRedeemAccessCodes reports whether the role may redeem access codes.
// Only guardians can be linked to a daycare through a code.
func (r Role) CanRedeemAccessCodes() bool { return r == RoleGuardian }

// CanManageDaycareData reports whether the role may manage operational
// daycare data such as groups, children and calendar events.
func (r Role) CanManageDaycareData() bool { return r == RoleStaff || r == RoleAdmin }

// User is a domain entity representing a guardian, staff member, or admin.
type User struct {
	ID           string
	FullName     string
	Email        string
	PhoneNumber  string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

func NewUser(id, fullName, email string, role Role) (*User, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if fullName == "" {
		return nil, domain.ErrInvalidArgument
	}
	if email == "" {
		return nil, domain.ErrInvalidArgument
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}
	return &User{
		ID:        id,
		FullName:  fullName,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}

func (u *User) IsZero() bool { return u == nil || u.ID == "" }
