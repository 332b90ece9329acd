package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

// Ensure implementation satisfies the interface.
var _ repository.MembershipRepository = (*membershipRepo)(nil)

type membershipRepo struct {
	pool *pgxpool.Pool
}

func NewMembershipRepo(pool *pgxpool.Pool) repository.MembershipRepository {
	return &membershipRepo{pool: pool}
}

func (r *membershipRepo) IsLinked(ctx context.Context, tx repository.Tx, guardianID, daycareID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM guardians_daycares WHERE guardian_id = $1 AND daycare_id = $2);`
	row, err := pickRow(ctx, r.pool, tx, q, guardianID, daycareID)
	if err != nil {
		return false, err
	}
	var linked bool
	if err := row.Scan(&linked); err != nil {
		return false, domain.ErrReadDatabaseRow
	}
	return linked, nil
}

// Link is idempotent: a duplicate pair is swallowed by ON CONFLICT.
func (r *membershipRepo) Link(ctx context.Context, tx repository.Tx, guardianID, daycareID string) error {
	const q = `
INSERT INTO guardians_daycares (guardian_id, daycare_id)
VALUES ($1, $2)
ON CONFLICT (guardian_id, daycare_id) DO NOTHING;
`
	_, err := execSQL(ctx, r.pool, tx, q, guardianID, daycareID)
	return err
}

func (r *membershipRepo) ListDaycaresByGuardian(ctx context.Context, tx repository.Tx, guardianID string) ([]*model.Daycare, error) {
	const q = `
SELECT d.id, d.name, d.org_number, d.address, d.created_at
  FROM daycares d
  JOIN guardians_daycares gd ON gd.daycare_id = d.id
 WHERE gd.guardian_id = $1
 ORDER BY d.name;
`
	rows, err := queryRows(ctx, r.pool, tx, q, guardianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Daycare
	for rows.Next() {
		var d model.Daycare
		if err := rows.Scan(&d.ID, &d.Name, &d.OrgNumber, &d.Address, &d.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
