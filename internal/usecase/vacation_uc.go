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
var _ VacationUseCase = (*vacationUC)(nil)

// VacationUseCase records and reads vacation reports.
type VacationUseCase interface {
	Report(ctx context.Context, childID, reportedBy string, startDate, endDate time.Time, note string) (*model.Vacation, error)
	ListByChild(ctx context.Context, childID string) ([]*model.Vacation, error)
}

type vacationUC struct {
	vacations repository.VacationRepository
	children  repository.ChildRepository
	users     repository.UserRepository
	log       *zerolog.Logger
}

func NewVacationUseCase(
	vacations repository.VacationRepository,
	children repository.ChildRepository,
	users repository.UserRepository,
	logger *zerolog.Logger,
) *vacationUC {
	return &vacationUC{vacations: vacations, children: children, users: users, log: logger}
}

func (uc *vacationUC) Report(ctx context.Context, childID, reportedBy string, startDate, endDate time.Time, note string) (*model.Vacation, error) {
	defer logging.TraceDuration(uc.log, "VacationUC.Report")()

	if _, err := uc.children.FindByID(ctx, repository.NoTX, childID); err != nil {
		return nil, err
	}
	if _, err := uc.users.FindByID(ctx, repository.NoTX, reportedBy); err != nil {
		return nil, err
	}
	v, err := model.NewVacation("", childID, reportedBy, startDate, endDate, note)
	if err != nil {
		return nil, err
	}
	if err := uc.vacations.Save(ctx, repository.NoTX, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *vacationUC) ListByChild(ctx context.Context, childID string) ([]*model.Vacation, error) {
	defer logging.TraceDuration(uc.log, "VacationUC.ListByChild")()
	return uc.vacations.ListByChild(ctx, repository.NoTX, childID)
}
