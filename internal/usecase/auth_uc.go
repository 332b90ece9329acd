package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
)

// Compile-time check
var _ AuthUseCase = (*authUC)(nil)

// AuthUseCase handles registration and credential verification. Token
// minting lives in the API layer; this use case only proves who a user is.
type AuthUseCase interface {
	Register(ctx context.Context, fullName, email, phone, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type authUC struct {
	users repository.UserRepository
	log   *zerolog.Logger
}

func NewAuthUseCase(users repository.UserRepository, logger *zerolog.Logger) *authUC {
	return &authUC{users: users, log: logger}
}

func (uc *authUC) Register(ctx context.Context, fullName, email, phone, password string, role model.Role) (*model.User, error) {
	defer logging.TraceDuration(uc.log, "AuthUC.Register")()

	if len(password) < 8 {
		return nil, domain.ErrInvalidArgument
	}
	u, err := model.NewUser("", fullName, email, role)
	if err != nil {
		return nil, err
	}
	u.PhoneNumber = phone

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if err := uc.users.Save(ctx, repository.NoTX, u); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("user registered")
	return u, nil
}

func (uc *authUC) Login(ctx context.Context, email, password string) (*model.User, error) {
	defer logging.TraceDuration(uc.log, "AuthUC.Login")()

	u, err := uc.users.FindByEmail(ctx, repository.NoTX, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	match, err := argon2id.ComparePasswordAndHash(password, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

func (uc *authUC) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	defer logging.TraceDuration(uc.log, "AuthUC.ChangePassword")()

	if len(newPassword) < 8 {
		return domain.ErrInvalidArgument
	}
	u, err := uc.users.FindByID(ctx, repository.NoTX, userID)
	if err != nil {
		return err
	}
	match, err := argon2id.ComparePasswordAndHash(currentPassword, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return domain.ErrUnauthorized
	}
	hash, err := argon2id.CreateHash(newPassword, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash
	return uc.users.Save(ctx, repository.NoTX, u)
}
