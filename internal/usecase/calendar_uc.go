package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
)

// Compile-time check
var _ CalendarUseCase = (*calendarUC)(nil)

// CalendarUseCase manages daycare calendar events.
type CalendarUseCase interface {
	Create(ctx context.Context, actorID, daycareID string, groupID *string, title, description, location string, startTime time.Time, endTime *time.Time) (*model.CalendarEvent, error)
	Update(ctx context.Context, actorID, eventID, title, description, location string, startTime time.Time, endTime *time.Time) (*model.CalendarEvent, error)
	Delete(ctx context.Context, actorID, eventID string) error
	ListByDaycareRange(ctx context.Context, daycareID string, from, to time.Time) ([]*model.CalendarEvent, error)
}

type calendarUC struct {
	events   repository.CalendarEventRepository
	daycares repository.DaycareRepository
	users    repository.UserRepository
	log      *zerolog.Logger
}

func NewCalendarUseCase(
	events repository.CalendarEventRepository,
	daycares repository.DaycareRepository,
	users repository.UserRepository,
	logger *zerolog.Logger,
) *calendarUC {
	return &calendarUC{events: events, daycares: daycares, users: users, log: logger}
}

func (uc *calendarUC) Create(ctx context.Context, actorID, daycareID string, groupID *string, title, description, location string, startTime time.Time, endTime *time.Time) (*model.CalendarEvent, error) {
	defer logging.TraceDuration(uc.log, "CalendarUC.Create")()

	if err := uc.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	if _, err := uc.daycares.FindByID(ctx, repository.NoTX, daycareID); err != nil {
		return nil, err
	}
	e, err := model.NewCalendarEvent("", daycareID, groupID, title, startTime, actorID)
	if err != nil {
		return nil, err
	}
	e.Description = description
	e.Location = location
	e.EndTime = endTime
	if err := uc.events.Save(ctx, repository.NoTX, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *calendarUC) Update(ctx context.Context, actorID, eventID, title, description, location string, startTime time.Time, endTime *time.Time) (*model.CalendarEvent, error) {
	defer logging.TraceDuration(uc.log, "CalendarUC.Update")()

	if err := uc.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	e, err := uc.events.FindByID(ctx, repository.NoTX, eventID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		e.Title = title
	}
	if description != "" {
		e.Description = description
	}
	if location != "" {
		e.Location = location
	}
	if !startTime.IsZero() {
		e.StartTime = startTime
	}
	if endTime != nil {
		e.EndTime = endTime
	}
	e.Touch()
	if err := uc.events.Save(ctx, repository.NoTX, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *calendarUC) Delete(ctx context.Context, actorID, eventID string) error {
	defer logging.TraceDuration(uc.log, "CalendarUC.Delete")()

	if err := uc.requireStaff(ctx, actorID); err != nil {
		return err
	}
	return uc.events.Delete(ctx, repository.NoTX, eventID)
}

func (uc *calendarUC) ListByDaycareRange(ctx context.Context, daycareID string, from, to time.Time) ([]*model.CalendarEvent, error) {
	defer logging.TraceDuration(uc.log, "CalendarUC.ListByDaycareRange")()
	return uc.events.ListByDaycareRange(ctx, repository.NoTX, daycareID, from, to)
}

func (uc *calendarUC) requireStaff(ctx context.Context, actorID string) error {
	actor, err := uc.users.FindByID(ctx, repository.NoTX, actorID)
	if err != nil {
		return err
	}
	if !actor.Role.CanManageDaycareData() {
		return domain.ErrForbidden
	}
	return nil
}
