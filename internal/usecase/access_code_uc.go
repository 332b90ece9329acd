package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
	"daycare-backend/internal/infra/logging"
	"daycare-backend/internal/infra/metrics"
)

// Compile-time check
var _ AccessCodeUseCase = (*accessCodeUC)(nil)

// defaultGenerateAttempts bounds the retry loop on code collisions.
const defaultGenerateAttempts = 5

// AccessCodeUseCase is the issuance and redemption engine for daycare
// access codes.
type AccessCodeUseCase interface {
	// Create mints a new code for a daycare. Only staff and admin users may
	// issue codes.
	Create(ctx context.Context, daycareID, issuerID string, maxUses int, expiresAt *time.Time) (*model.AccessCode, error)
	// Validate checks that a code is redeemable and returns its daycare
	// without mutating any state or consuming capacity.
	Validate(ctx context.Context, code string) (*model.Daycare, error)
	// Redeem validates the code, links the guardian to the daycare
	// (idempotently) and consumes one unit of the code's capacity, all
	// inside a single transaction.
	Redeem(ctx context.Context, code, guardianID string) (*model.Daycare, error)
	// ListByDaycare returns the codes issued for a daycare.
	ListByDaycare(ctx context.Context, daycareID string) ([]*model.AccessCode, error)
	// Deactivate turns a code off ahead of exhaustion or expiry.
	Deactivate(ctx context.Context, code string) error
}

type accessCodeUC struct {
	codes       repository.AccessCodeRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
	daycares    repository.DaycareRepository
	gen         *CodeGenerator
	tm          repository.TransactionManager
	attempts    int
	now         func() time.Time
	log         *zerolog.Logger
}

func NewAccessCodeUseCase(
	codes repository.AccessCodeRepository,
	memberships repository.MembershipRepository,
	users repository.UserRepository,
	daycares repository.DaycareRepository,
	gen *CodeGenerator,
	tm repository.TransactionManager,
	attempts int,
	logger *zerolog.Logger,
) *accessCodeUC {
	if attempts <= 0 {
		attempts = defaultGenerateAttempts
	}
	return &accessCodeUC{
		codes:       codes,
		memberships: memberships,
		users:       users,
		daycares:    daycares,
		gen:         gen,
		tm:          tm,
		attempts:    attempts,
		now:         time.Now,
		log:         logger,
	}
}

func (uc *accessCodeUC) Create(ctx context.Context, daycareID, issuerID string, maxUses int, expiresAt *time.Time) (*model.AccessCode, error) {
	defer logging.TraceDuration(uc.log, "AccessCodeUC.Create")()

	if maxUses <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	if _, err := uc.daycares.FindByID(ctx, repository.NoTX, daycareID); err != nil {
		return nil, err
	}
	issuer, err := uc.users.FindByID(ctx, repository.NoTX, issuerID)
	if err != nil {
		return nil, err
	}
	if !issuer.Role.CanIssueAccessCodes() {
		return nil, domain.ErrForbidden
	}

	// The generator makes no uniqueness claim; retry against the store's
	// unique constraint a bounded number of times.
	for i := 0; i < uc.attempts; i++ {
		code, err := uc.gen.Generate()
		if err != nil {
			return nil, err
		}
		ac, err := model.NewAccessCode(uuid.NewString(), code, daycareID, issuerID, maxUses, expiresAt)
		if err != nil {
			return nil, err
		}
		err = uc.codes.Create(ctx, repository.NoTX, ac)
		if errors.Is(err, domain.ErrAlreadyExists) {
			uc.log.Debug().Str("code", code).Msg("access code collision, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}
		metrics.CodeIssued()
		return ac, nil
	}
	return nil, domain.ErrCodeGenerationExhausted
}

func (uc *accessCodeUC) Validate(ctx context.Context, code string) (*model.Daycare, error) {
	defer logging.TraceDuration(uc.log, "AccessCodeUC.Validate")()

	ac, err := uc.findCode(ctx, repository.NoTX, code)
	if err != nil {
		return nil, err
	}
	if err := ac.Redeemable(uc.now()); err != nil {
		return nil, err
	}
	return uc.daycares.FindByID(ctx, repository.NoTX, ac.DaycareID)
}

func (uc *accessCodeUC) Redeem(ctx context.Context, code, guardianID string) (*model.Daycare, error) {
	defer logging.TraceDuration(uc.log, "AccessCodeUC.Redeem")()

	var daycare *model.Daycare
	// Link and consume must commit or roll back together. The conditional
	// update inside Consume is the serialization point for concurrent
	// redemptions of the same code, so ReadCommitted is enough here.
	txOpts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	err := uc.tm.WithTx(ctx, txOpts, func(ctx context.Context, tx repository.Tx) error {
		ac, err := uc.findCode(ctx, tx, code)
		if err != nil {
			return err
		}
		if err := ac.Redeemable(uc.now()); err != nil {
			return err
		}

		guardian, err := uc.users.FindByID(ctx, tx, guardianID)
		if err != nil {
			return err
		}
		if !guardian.Role.CanRedeemAccessCodes() {
			return domain.ErrForbidden
		}

		linked, err := uc.memberships.IsLinked(ctx, tx, guardian.ID, ac.DaycareID)
		if err != nil {
			return err
		}
		if !linked {
			if err := uc.memberships.Link(ctx, tx, guardian.ID, ac.DaycareID); err != nil {
				return err
			}
		}

		if err := uc.codes.Consume(ctx, tx, ac.Code); err != nil {
			return err
		}

		daycare, err = uc.daycares.FindByID(ctx, tx, ac.DaycareID)
		return err
	})
	if err != nil {
		metrics.CodeRedeemed("failed")
		return nil, err
	}
	metrics.CodeRedeemed("succeeded")
	uc.log.Info().Str("guardian_id", guardianID).Str("daycare_id", daycare.ID).Msg("access code redeemed")
	return daycare, nil
}

func (uc *accessCodeUC) ListByDaycare(ctx context.Context, daycareID string) ([]*model.AccessCode, error) {
	defer logging.TraceDuration(uc.log, "AccessCodeUC.ListByDaycare")()
	return uc.codes.ListByDaycare(ctx, repository.NoTX, daycareID)
}

func (uc *accessCodeUC) Deactivate(ctx context.Context, code string) error {
	defer logging.TraceDuration(uc.log, "AccessCodeUC.Deactivate")()
	return uc.codes.Deactivate(ctx, repository.NoTX, code)
}

// findCode looks up a code and maps a missing record to ErrInvalidCode: an
// unknown code and a deactivated one are indistinguishable to the caller.
func (uc *accessCodeUC) findCode(ctx context.Context, tx repository.Tx, code string) (*model.AccessCode, error) {
	ac, err := uc.codes.FindByCode(ctx, tx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCode
	}
	return ac, err
}
