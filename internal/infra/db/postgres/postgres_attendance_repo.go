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

var _ repository.AttendanceRepository = (*attendanceRepo)(nil)

type attendanceRepo struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepo(pool *pgxpool.Pool) repository.AttendanceRepository {
	return &attendanceRepo{pool: pool}
}

func (r *attendanceRepo) Save(ctx context.Context, tx repository.Tx, a *model.Attendance) error {
	const q = `
INSERT INTO attendance (id, child_id, event_type, event_time, note, performed_by_user_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := execSQL(ctx, r.pool, tx, q,
		a.ID, a.ChildID, string(a.EventType), a.EventTime, a.Note, a.PerformedBy, a.CreatedAt,
	)
	return err
}

func (r *attendanceRepo) ListByChildAndDay(ctx context.Context, tx repository.Tx, childID string, day time.Time) ([]*model.Attendance, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	const q = `
SELECT id, child_id, event_type, event_time, note, performed_by_user_id, created_at
  FROM attendance
 WHERE child_id = $1 AND event_time >= $2 AND event_time < $3
 ORDER BY event_time;
`
	rows, err := queryRows(ctx, r.pool, tx, q, childID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepo) LastEvent(ctx context.Context, tx repository.Tx, childID string) (*model.Attendance, error) {
	const q = `
SELECT id, child_id, event_type, event_time, note, performed_by_user_id, created_at
  FROM attendance
 WHERE child_id = $1
 ORDER BY event_time DESC
 LIMIT 1;
`
	row, err := pickRow(ctx, r.pool, tx, q, childID)
	if err != nil {
		return nil, err
	}
	a, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return a, nil
}

func scanAttendance(row pgx.Row) (*model.Attendance, error) {
	var a model.Attendance
	var eventType string
	err := row.Scan(&a.ID, &a.ChildID, &eventType, &a.EventTime, &a.Note, &a.PerformedBy, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.EventType = model.AttendanceEventType(eventType)
	return &a, nil
}
