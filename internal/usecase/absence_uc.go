package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
)

// Compile-time check
var _ AbsenceUseCase = (*absenceUC)(nil)

// AbsenceUseCase records and reads absence reports.
type AbsenceUseCase interface {
	Report(ctx context.Context, childID, reportedBy string, date time.Time, reason, note string) (*model.Absence, error)
	ListByChild(ctx context.Context, childID string) ([]*model.Absence, error)
}

type absenceUC struct {
	absences repository.AbsenceRepository
	children repository.ChildRepository
	users    repository.UserRepository
	log      *zerolog.Logger
}

func NewAbsenceUseCase(
	absences repository.AbsenceRepository,
	children repository.ChildRepository,
	users repository.UserRepository,
	logger *zerolog.Logger,
) *absenceUC {
	return &absenceUC{absences: absences, children: children, users: users, log: logger}
}

func (uc *absenceUC) Report(ctx context.Context, childID, reportedBy string, date time.Time, reason, note string) (*model.Absence, error) {
	defer logging.TraceDuration(uc.log, "AbsenceUC.Report")()

	if _, err := uc.children.FindByID(ctx, repository.NoTX, childID); err != nil {
		return nil, err
	}
	if _, err := uc.users.FindByID(ctx, repository.NoTX, reportedBy); err != nil {
		return nil, err
	}
	a, err := model.NewAbsence("", childID, reportedBy, date, reason, note)
	if err != nil {
		return nil, err
	}
	if err := uc.absences.Save(ctx, repository.NoTX, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *absenceUC) ListByChild(ctx context.Context, childID string) ([]*model.Absence, error) {
	defer logging.TraceDuration(uc.log, "AbsenceUC.ListByChild")()
	return uc.absences.ListByChild(ctx, repository.NoTX, childID)
}
