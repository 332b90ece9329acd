package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
)

// Compile-time check
var _ DaycareUseCase = (*daycareUC)(nil)

// DaycareUseCase exposes tenant operations.
type DaycareUseCase interface {
	Create(ctx context.Context, actorID, name, orgNumber, address string) (*model.Daycare, error)
	Get(ctx context.Context, id string) (*model.Daycare, error)
	ListForGuardian(ctx context.Context, guardianID string) ([]*model.Daycare, error)
	CreateGroup(ctx context.Context, actorID, daycareID, name, description string) (*model.DaycareGroup, error)
	ListGroups(ctx context.Context, daycareID string) ([]*model.DaycareGroup, error)
}

type daycareUC struct {
	daycares    repository.DaycareRepository
	groups      repository.DaycareGroupRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
	log         *zerolog.Logger
}

func NewDaycareUseCase(
	daycares repository.DaycareRepository,
	groups repository.DaycareGroupRepository,
	memberships repository.MembershipRepository,
	users repository.UserRepository,
	logger *zerolog.Logger,
) *daycareUC {
	return &daycareUC{daycares: daycares, groups: groups, memberships: memberships, users: users, log: logger}
}

func (uc *daycareUC) Create(ctx context.Context, actorID, name, orgNumber, address string) (*model.Daycare, error) {
	defer logging.TraceDuration(uc.log, "DaycareUC.Create")()

	actor, err := uc.users.FindByID(ctx, repository.NoTX, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	d, err := model.NewDaycare("", name, orgNumber, address)
	if err != nil {
		return nil, err
	}
	if err := uc.daycares.Save(ctx, repository.NoTX, d); err != nil {
		return nil, err
	}
	uc.log.Info().Str("daycare_id", d.ID).Msg("daycare created")
	return d, nil
}

func (uc *daycareUC) Get(ctx context.Context, id string) (*model.Daycare, error) {
	defer logging.TraceDuration(uc.log, "DaycareUC.Get")()
	return uc.daycares.FindByID(ctx, repository.NoTX, id)
}

func (uc *daycareUC) ListForGuardian(ctx context.Context, guardianID string) ([]*model.Daycare, error) {
	defer logging.TraceDuration(uc.log, "DaycareUC.ListForGuardian")()
	return uc.memberships.ListDaycaresByGuardian(ctx, repository.NoTX, guardianID)
}

func (uc *daycareUC) CreateGroup(ctx context.Context, actorID, daycareID, name, description string) (*model.DaycareGroup, error) {
	defer logging.TraceDuration(uc.log, "DaycareUC.CreateGroup")()

	actor, err := uc.users.FindByID(ctx, repository.NoTX, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.CanManageDaycareData() {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.daycares.FindByID(ctx, repository.NoTX, daycareID); err != nil {
		return nil, err
	}
	g, err := model.NewDaycareGroup("", daycareID, name, description)
	if err != nil {
		return nil, err
	}
	if err := uc.groups.Save(ctx, repository.NoTX, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (uc *daycareUC) ListGroups(ctx context.Context, daycareID string) ([]*model.DaycareGroup, error) {
	defer logging.TraceDuration(uc.log, "DaycareUC.ListGroups")()
	return uc.groups.ListByDaycare(ctx, repository.NoTX, daycareID)
}
