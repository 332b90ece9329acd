package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

var _ repository.ChildRepository = (*childRepo)(nil)

type childRepo struct {
	pool *pgxpool.Pool
}

func NewChildRepo(pool *pgxpool.Pool) repository.ChildRepository {
	return &childRepo{pool: pool}
}

const childColumns = `id, first_name, last_name, date_of_birth, daycare_group_id, is_active, allergies, medications, note, created_at`

func (r *childRepo) Save(ctx context.Context, tx repository.Tx, c *model.Child) error {
	const q = `
INSERT INTO children (id, first_name, last_name, date_of_birth, daycare_group_id, is_active, allergies, medications, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
  first_name = EXCLUDED.first_name,
  last_name = EXCLUDED.last_name,
  daycare_group_id = EXCLUDED.daycare_group_id,
  is_active = EXCLUDED.is_active,
  allergies = EXCLUDED.allergies,
  medications = EXCLUDED.medications,
  note = EXCLUDED.note;
`
	_, err := execSQL(ctx, r.pool, tx, q,
		c.ID, c.FirstName, c.LastName, c.DateOfBirth, c.GroupID, c.Active, c.Allergies, c.Medications, c.Note, c.CreatedAt,
	)
	return err
}

func (r *childRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Child, error) {
	q := `SELECT ` + childColumns + ` FROM children WHERE id = $1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	c, err := scanChild(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return c, nil
}

func (r *childRepo) ListByGuardian(ctx context.Context, tx repository.Tx, guardianID string) ([]*model.Child, error) {
	q := `
SELECT ` + childColumns + `
  FROM children c
  JOIN guardians_children gc ON gc.child_id = c.id
 WHERE gc.guardian_id = $1
 ORDER BY c.first_name;
`
	return r.list(ctx, tx, q, guardianID)
}

func (r *childRepo) ListByGroup(ctx context.Context, tx repository.Tx, groupID string) ([]*model.Child, error) {
	q := `SELECT ` + childColumns + ` FROM children c WHERE daycare_group_id = $1 ORDER BY first_name;`
	return r.list(ctx, tx, q, groupID)
}

func (r *childRepo) LinkGuardian(ctx context.Context, tx repository.Tx, guardianID, childID string) error {
	const q = `
INSERT INTO guardians_children (guardian_id, child_id)
VALUES ($1, $2)
ON CONFLICT (guardian_id, child_id) DO NOTHING;
`
	_, err := execSQL(ctx, r.pool, tx, q, guardianID, childID)
	return err
}

func (r *childRepo) list(ctx context.Context, tx repository.Tx, q string, arg interface{}) ([]*model.Child, error) {
	rows, err := queryRows(ctx, r.pool, tx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Child
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanChild(row pgx.Row) (*model.Child, error) {
	var c model.Child
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.DateOfBirth, &c.GroupID, &c.Active,
		&c.Allergies, &c.Medications, &c.Note, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
