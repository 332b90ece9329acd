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
var _ ChildUseCase = (*childUC)(nil)

// ChildUseCase exposes child records and the guardian-child relation.
type ChildUseCase interface {
	Create(ctx context.Context, actorID, firstName, lastName string, dateOfBirth *time.Time, groupID *string) (*model.Child, error)
	Get(ctx context.Context, id string) (*model.Child, error)
	ListByGuardian(ctx context.Context, guardianID string) ([]*model.Child, error)
	ListByGroup(ctx context.Context, groupID string) ([]*model.Child, error)
	LinkGuardian(ctx context.Context, actorID, guardianID, childID string) error
}

type childUC struct {
	children repository.ChildRepository
	users    repository.UserRepository
	log      *zerolog.Logger
}

func NewChildUseCase(children repository.ChildRepository, users repository.UserRepository, logger *zerolog.Logger) *childUC {
	return &childUC{children: children, users: users, log: logger}
}

func (uc *childUC) Create(ctx context.Context, actorID, firstName, lastName string, dateOfBirth *time.Time, groupID *string) (*model.Child, error) {
	defer logging.TraceDuration(uc.log, "ChildUC.Create")()

	if err := uc.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	c, err := model.NewChild("", firstName, lastName, dateOfBirth)
	if err != nil {
		return nil, err
	}
	c.GroupID = groupID
	if err := uc.children.Save(ctx, repository.NoTX, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *childUC) Get(ctx context.Context, id string) (*model.Child, error) {
	defer logging.TraceDuration(uc.log, "ChildUC.Get")()
	return uc.children.FindByID(ctx, repository.NoTX, id)
}

func (uc *childUC) ListByGuardian(ctx context.Context, guardianID string) ([]*model.Child, error) {
	defer logging.TraceDuration(uc.log, "ChildUC.ListByGuardian")()
	return uc.children.ListByGuardian(ctx, repository.NoTX, guardianID)
}

func (uc *childUC) ListByGroup(ctx context.Context, groupID string) ([]*model.Child, error) {
	defer logging.TraceDuration(uc.log, "ChildUC.ListByGroup")()
	return uc.children.ListByGroup(ctx, repository.NoTX, groupID)
}

func (uc *childUC) LinkGuardian(ctx context.Context, actorID, guardianID, childID string) error {
	defer logging.TraceDuration(uc.log, "ChildUC.LinkGuardian")()

	if err := uc.requireStaff(ctx, actorID); err != nil {
		return err
	}
	guardian, err := uc.users.FindByID(ctx, repository.NoTX, guardianID)
	if err != nil {
		return err
	}
	if guardian.Role != model.RoleGuardian {
		return domain.ErrForbidden
	}
	if _, err := uc.children.FindByID(ctx, repository.NoTX, childID); err != nil {
		return err
	}
	return uc.children.LinkGuardian(ctx, repository.NoTX, guardianID, childID)
}

func (uc *childUC) requireStaff(ctx context.Context, actorID string) error {
	actor, err := uc.users.FindByID(ctx, repository.NoTX, actorID)
	if err != nil {
		return err
	}
	if !actor.Role.CanManageDaycareData() {
		return domain.ErrForbidden
	}
	return nil
}
