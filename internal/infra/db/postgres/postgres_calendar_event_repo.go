package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

var _ repository.CalendarEventRepository = (*calendarEventRepo)(nil)

type calendarEventRepo struct {
	pool *pgxpool.Pool
}

func NewCalendarEventRepo(pool *pgxpool.Pool) repository.CalendarEventRepository {
	return &calendarEventRepo{pool: pool}
}

func (r *calendarEventRepo) Save(ctx context.Context, tx repository.Tx, e *model.CalendarEvent) error {
	const q = `
INSERT INTO calendar_events (id, daycare_id, daycare_group_id, title, description, location, start_time, end_time, created_by_user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
  title = EXCLUDED.title,
  description = EXCLUDED.description,
  location = EXCLUDED.location,
  start_time = EXCLUDED.start_time,
  end_time = EXCLUDED.end_time,
  updated_at = EXCLUDED.updated_at;
`
	_, err := execSQL(ctx, r.pool, tx, q,
		e.ID, e.DaycareID, e.GroupID, e.Title, e.Description, e.Location,
		e.StartTime, e.EndTime, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *calendarEventRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.CalendarEvent, error) {
	const q = `
SELECT id, daycare_id, daycare_group_id, title, description, location, start_time, end_time, created_by_user_id, created_at, updated_at
  FROM calendar_events WHERE id = $1;
`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	e, err := scanCalendarEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return e, nil
}

func (r *calendarEventRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	const q = `DELETE FROM calendar_events WHERE id = $1;`
	tag, err := execSQL(ctx, r.pool, tx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *calendarEventRepo) ListByDaycareRange(ctx context.Context, tx repository.Tx, daycareID string, from, to time.Time) ([]*model.CalendarEvent, error) {
	const q = `
SELECT id, daycare_id, daycare_group_id, title, description, location, start_time, end_time, created_by_user_id, created_at, updated_at
  FROM calendar_events
 WHERE daycare_id = $1 AND start_time >= $2 AND start_time <= $3
 ORDER BY start_time;
`
	rows, err := queryRows(ctx, r.pool, tx, q, daycareID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.CalendarEvent
	for rows.Next() {
		e, err := scanCalendarEvent(rows)
		if err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanCalendarEvent(row pgx.Row) (*model.CalendarEvent, error) {
	var e model.CalendarEvent
	err := row.Scan(
		&e.ID, &e.DaycareID, &e.GroupID, &e.Title, &e.Description, &e.Location,
		&e.StartTime, &e.EndTime, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
