package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
)

// Compile-time check
var _ AttendanceUseCase = (*attendanceUC)(nil)

// AttendanceUseCase records and reads check-in/out events.
type AttendanceUseCase interface {
	RecordEvent(ctx context.Context, childID string, eventType model.AttendanceEventType, eventTime time.Time, note, performedBy string) (*model.Attendance, error)
	ListByChildAndDay(ctx context.Context, childID string, day time.Time) ([]*model.Attendance, error)
	// CurrentStatus returns the child's latest event, or nil when the child
	// has never been checked in.
	CurrentStatus(ctx context.Context, childID string) (*model.Attendance, error)
}

type attendanceUC struct {
	attendance repository.AttendanceRepository
	children   repository.ChildRepository
	users      repository.UserRepository
	log        *zerolog.Logger
}

func NewAttendanceUseCase(
	attendance repository.AttendanceRepository,
	children repository.ChildRepository,
	users repository.UserRepository,
	logger *zerolog.Logger,
) *attendanceUC {
	return &attendanceUC{attendance: attendance, children: children, users: users, log: logger}
}

func (uc *attendanceUC) RecordEvent(ctx context.Context, childID string, eventType model.AttendanceEventType, eventTime time.Time, note, performedBy string) (*model.Attendance, error) {
	defer logging.TraceDuration(uc.log, "AttendanceUC.RecordEvent")()

	if _, err := uc.children.FindByID(ctx, repository.NoTX, childID); err != nil {
		return nil, err
	}
	if _, err := uc.users.FindByID(ctx, repository.NoTX, performedBy); err != nil {
		return nil, err
	}
	a, err := model.NewAttendance("", childID, eventType, eventTime, note, performedBy)
	if err != nil {
		return nil, err
	}
	if err := uc.attendance.Save(ctx, repository.NoTX, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *attendanceUC) ListByChildAndDay(ctx context.Context, childID string, day time.Time) ([]*model.Attendance, error) {
	defer logging.TraceDuration(uc.log, "AttendanceUC.ListByChildAndDay")()
	return uc.attendance.ListByChildAndDay(ctx, repository.NoTX, childID, day)
}

func (uc *attendanceUC) CurrentStatus(ctx context.Context, childID string) (*model.Attendance, error) {
	defer logging.TraceDuration(uc.log, "AttendanceUC.CurrentStatus")()
	last, err := uc.attendance.LastEvent(ctx, repository.NoTX, childID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return last, err
}
