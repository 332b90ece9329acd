package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

var _ repository.AbsenceRepository = (*absenceRepo)(nil)

type absenceRepo struct {
	pool *pgxpool.Pool
}

func NewAbsenceRepo(pool *pgxpool.Pool) repository.AbsenceRepository {
	return &absenceRepo{pool: pool}
}

func (r *absenceRepo) Save(ctx context.Context, tx repository.Tx, a *model.Absence) error {
	const q = `
INSERT INTO absences (id, child_id, reported_by_user_id, date, reason, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := execSQL(ctx, r.pool, tx, q,
		a.ID, a.ChildID, a.ReportedBy, a.Date, a.Reason, a.Note, a.CreatedAt,
	)
	return err
}

func (r *absenceRepo) ListByChild(ctx context.Context, tx repository.Tx, childID string) ([]*model.Absence, error) {
	const q = `
SELECT id, child_id, reported_by_user_id, date, reason, note, created_at
  FROM absences
 WHERE child_id = $1
 ORDER BY date DESC;
`
	rows, err := queryRows(ctx, r.pool, tx, q, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Absence
	for rows.Next() {
		var a model.Absence
		if err := rows.Scan(&a.ID, &a.ChildID, &a.ReportedBy, &a.Date, &a.Reason, &a.Note, &a.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
