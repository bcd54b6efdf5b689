package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/internal/domain/repository"
)

type GoalRepository struct {
	pool *pgxpool.Pool
}

func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

const goalColumns = `id, user_id, goal_name, goal_description, goal_type, is_completed, created_at, updated_at`

func scanGoal(row pgx.Row, g *entity.Goal) error {
	return row.Scan(&g.ID, &g.UserID, &g.GoalName, &g.GoalDescription, &g.GoalType,
		&g.IsCompleted, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GoalRepository) Create(g *entity.Goal) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO goals (user_id, goal_name, goal_description, goal_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_completed, created_at, updated_at
	`, g.UserID, g.GoalName, g.GoalDescription, g.GoalType)

	if err := row.Scan(&g.ID, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *GoalRepository) GetByID(id string) (*entity.Goal, error) {
	ctx := context.Background()
	g := &entity.Goal{}

	row := r.pool.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id)
	if err := scanGoal(row, g); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *GoalRepository) ListByUser(userID string) ([]entity.Goal, error) {
	return r.list(`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at`, userID)
}

func (r *GoalRepository) List() ([]entity.Goal, error) {
	return r.list(`SELECT ` + goalColumns + ` FROM goals ORDER BY created_at`)
}

func (r *GoalRepository) list(query string, args ...any) ([]entity.Goal, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]entity.Goal, 0)
	for rows.Next() {
		var g entity.Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) Update(g *entity.Goal) error {
	ctx := context.Background()
	g.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE goals
		SET goal_name = $1, goal_description = $2, goal_type = $3, is_completed = $4, updated_at = $5
		WHERE id = $6
	`, g.GoalName, g.GoalDescription, g.GoalType, g.IsCompleted, g.UpdatedAt, g.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the goal; its events cascade via ON DELETE CASCADE.
func (r *GoalRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.GoalRepository = (*GoalRepository)(nil)
