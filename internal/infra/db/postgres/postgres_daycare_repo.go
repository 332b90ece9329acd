package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

var _ repository.DaycareRepository = (*daycareRepo)(nil)

type daycareRepo struct {
	pool *pgxpool.Pool
}

func NewDaycareRepo(pool *pgxpool.Pool) repository.DaycareRepository {
	return &daycareRepo{pool: pool}
}

func (r *daycareRepo) Save(ctx context.Context, tx repository.Tx, d *model.Daycare) error {
	const q = `
INSERT INTO daycares (id, name, org_number, address, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  address = EXCLUDED.address;
`
	_, err := execSQL(ctx, r.pool, tx, q, d.ID, d.Name, d.OrgNumber, d.Address, d.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *daycareRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Daycare, error) {
	const q = `SELECT id, name, org_number, address, created_at FROM daycares WHERE id = $1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	var d model.Daycare
	err = row.Scan(&d.ID, &d.Name, &d.OrgNumber, &d.Address, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &d, nil
}
