package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

var _ repository.VacationRepository = (*vacationRepo)(nil)

type vacationRepo struct {
	pool *pgxpool.Pool
}

func NewVacationRepo(pool *pgxpool.Pool) repository.VacationRepository {
	return &vacationRepo{pool: pool}
}

func (r *vacationRepo) Save(ctx context.Context, tx repository.Tx, v *model.Vacation) error {
	const q = `
INSERT INTO vacations (id, child_id, reported_by_user_id, start_date, end_date, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := execSQL(ctx, r.pool, tx, q,
		v.ID, v.ChildID, v.ReportedBy, v.StartDate, v.EndDate, v.Note, v.CreatedAt,
	)
	return err
}

func (r *vacationRepo) ListByChild(ctx context.Context, tx repository.Tx, childID string) ([]*model.Vacation, error) {
	const q = `
SELECT id, child_id, reported_by_user_id, start_date, end_date, note, created_at
  FROM vacations
 WHERE child_id = $1
 ORDER BY start_date DESC;
`
	rows, err := queryRows(ctx, r.pool, tx, q, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Vacation
	for rows.Next() {
		var v model.Vacation
		if err := rows.Scan(&v.ID, &v.ChildID, &v.ReportedBy, &v.StartDate, &v.EndDate, &v.Note, &v.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
