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

var _ repository.DaycareGroupRepository = (*groupRepo)(nil)

type groupRepo struct {
	pool *pgxpool.Pool
}

func NewDaycareGroupRepo(pool *pgxpool.Pool) repository.DaycareGroupRepository {
	return &groupRepo{pool: pool}
}

func (r *groupRepo) Save(ctx context.Context, tx repository.Tx, g *model.DaycareGroup) error {
	const q = `
INSERT INTO daycare_groups (id, daycare_id, name, description, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  description = EXCLUDED.description;
`
	_, err := execSQL(ctx, r.pool, tx, q, g.ID, g.DaycareID, g.Name, g.Description, g.CreatedAt)
	return err
}

func (r *groupRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.DaycareGroup, error) {
	const q = `SELECT id, daycare_id, name, description, created_at FROM daycare_groups WHERE id = $1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	var g model.DaycareGroup
	err = row.Scan(&g.ID, &g.DaycareID, &g.Name, &g.Description, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &g, nil
}

func (r *groupRepo) ListByDaycare(ctx context.Context, tx repository.Tx, daycareID string) ([]*model.DaycareGroup, error) {
	const q = `
SELECT id, daycare_id, name, description, created_at
  FROM daycare_groups
 WHERE daycare_id = $1
 ORDER BY name;
`
	rows, err := queryRows(ctx, r.pool, tx, q, daycareID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.DaycareGroup
	for rows.Next() {
		var g model.DaycareGroup
		if err := rows.Scan(&g.ID, &g.DaycareID, &g.Name, &g.Description, &g.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}
