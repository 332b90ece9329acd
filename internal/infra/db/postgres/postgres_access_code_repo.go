package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

// Ensure implementation satisfies the interface.
var _ repository.AccessCodeRepository = (*accessCodeRepo)(nil)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

type accessCodeRepo struct {
	pool *pgxpool.Pool
}

func NewAccessCodeRepo(pool *pgxpool.Pool) repository.AccessCodeRepository {
	return &accessCodeRepo{pool: pool}
}

func (r *accessCodeRepo) Create(ctx context.Context, tx repository.Tx, ac *model.AccessCode) error {
	if ac.ID == "" {
		ac.ID = uuid.NewString()
	}

	const q = `
INSERT INTO access_codes (id, code, daycare_id, issued_by_user_id, max_uses, used_count, is_active, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`
	_, err := execSQL(ctx, r.pool, tx, q,
		ac.ID, ac.Code, ac.DaycareID, ac.IssuedBy, ac.MaxUses, ac.UsedCount, ac.Active, ac.CreatedAt, ac.ExpiresAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *accessCodeRepo) FindByCode(ctx context.Context, tx repository.Tx, code string) (*model.AccessCode, error) {
	const q = `
SELECT id, code, daycare_id, issued_by_user_id, max_uses, used_count, is_active, created_at, expires_at
  FROM access_codes
 WHERE code = $1;
`
	row, err := pickRow(ctx, r.pool, tx, q, code)
	if err != nil {
		return nil, err
	}

	var ac model.AccessCode
	err = row.Scan(
		&ac.ID, &ac.Code, &ac.DaycareID, &ac.IssuedBy, &ac.MaxUses, &ac.UsedCount, &ac.Active, &ac.CreatedAt, &ac.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &ac, nil
}

// Consume is the single serialization point for concurrent redemptions: the
// guard `used_count < max_uses` and the increment run in one conditional
// UPDATE, so used_count can never overshoot max_uses. The code flips
// inactive in the same statement when the last use is taken. Deactivation is
// one-way: is_active is ANDed with the exhaustion check so a concurrent
// Deactivate committed between the caller's read and this update stays off.
func (r *accessCodeRepo) Consume(ctx context.Context, tx repository.Tx, code string) error {
	const q = `
UPDATE access_codes
   SET used_count = used_count + 1,
       is_active  = is_active AND (used_count + 1 < max_uses)
 WHERE code = $1
   AND used_count < max_uses;
`
	tag, err := execSQL(ctx, r.pool, tx, q, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCodeExhausted
	}
	return nil
}

func (r *accessCodeRepo) Deactivate(ctx context.Context, tx repository.Tx, code string) error {
	const q = `UPDATE access_codes SET is_active = FALSE WHERE code = $1;`
	tag, err := execSQL(ctx, r.pool, tx, q, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accessCodeRepo) ListByDaycare(ctx context.Context, tx repository.Tx, daycareID string) ([]*model.AccessCode, error) {
	const q = `
SELECT id, code, daycare_id, issued_by_user_id, max_uses, used_count, is_active, created_at, expires_at
  FROM access_codes
 WHERE daycare_id = $1
 ORDER BY created_at DESC;
`
	rows, err := queryRows(ctx, r.pool, tx, q, daycareID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.AccessCode
	for rows.Next() {
		var ac model.AccessCode
		if err := rows.Scan(
			&ac.ID, &ac.Code, &ac.DaycareID, &ac.IssuedBy, &ac.MaxUses, &ac.UsedCount, &ac.Active, &ac.CreatedAt, &ac.ExpiresAt,
		); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, &ac)
	}
	return out, rows.Err()
}
