package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, user_id, goal_id, date_time, note, created_at`

func scanEvent(row pgx.Row, e *entity.Event) error {
	return row.Scan(&e.ID, &e.UserID, &e.GoalID, &e.DateTime, &e.Note, &e.CreatedAt)
}

// Create inserts the event. The events_user_goal_day_uniq index is the
// authoritative once-per-day rule; a violation comes back as ErrDuplicateDay
// so a submission racing past the advisory gate still cannot double-log.
func (r *EventRepository) Create(e *entity.Event) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (user_id, goal_id, date_time, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, e.UserID, e.GoalID, e.DateTime, e.Note)

	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *EventRepository) GetByID(id string) (*entity.Event, error) {
	ctx := context.Background()
	e := &entity.Event{}

	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	if err := scanEvent(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) ListByUser(userID string) ([]entity.Event, error) {
	return r.list(`SELECT `+eventColumns+` FROM events WHERE user_id = $1 ORDER BY date_time`, userID)
}

func (r *EventRepository) ListByGoal(goalID string) ([]entity.Event, error) {
	return r.list(`SELECT `+eventColumns+` FROM events WHERE goal_id = $1 ORDER BY date_time`, goalID)
}

func (r *EventRepository) ListByUserAndGoal(userID, goalID string) ([]entity.Event, error) {
	return r.list(`SELECT `+eventColumns+` FROM events WHERE user_id = $1 AND goal_id = $2 ORDER BY date_time`, userID, goalID)
}

func (r *EventRepository) List() ([]entity.Event, error) {
	return r.list(`SELECT ` + eventColumns + ` FROM events ORDER BY date_time`)
}

func (r *EventRepository) list(query string, args ...any) ([]entity.Event, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]entity.Event, 0)
	for rows.Next() {
		var e entity.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
