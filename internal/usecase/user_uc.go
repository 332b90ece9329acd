package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
)

// Compile-time check
var _ UserUseCase = (*userUC)(nil)

// UserUseCase exposes profile operations.
type UserUseCase interface {
	Get(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, id, fullName, phone string) (*model.User, error)
}

type userUC struct {
	users repository.UserRepository
	log   *zerolog.Logger
}

func NewUserUseCase(users repository.UserRepository, logger *zerolog.Logger) *userUC {
	return &userUC{users: users, log: logger}
}

func (uc *userUC) Get(ctx context.Context, id string) (*model.User, error) {
	defer logging.TraceDuration(uc.log, "UserUC.Get")()
	return uc.users.FindByID(ctx, repository.NoTX, id)
}

func (uc *userUC) UpdateProfile(ctx context.Context, id, fullName, phone string) (*model.User, error) {
	defer logging.TraceDuration(uc.log, "UserUC.UpdateProfile")()

	u, err := uc.users.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		u.FullName = fullName
	}
	if phone != "" {
		u.PhoneNumber = phone
	}
	if err := uc.users.Save(ctx, repository.NoTX, u); err != nil {
		return nil, err
	}
	return u, nil
}
