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

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

const teamColumns = `id, user_id_one, user_id_two, team_name, created_at, updated_at`

func scanTeam(row pgx.Row, t *entity.Team) error {
	return row.Scan(&t.ID, &t.UserIDOne, &t.UserIDTwo, &t.TeamName, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TeamRepository) Create(t *entity.Team) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO teams (user_id_one, user_id_two, team_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, t.UserIDOne, t.UserIDTwo, t.TeamName)

	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *TeamRepository) GetByID(id string) (*entity.Team, error) {
	ctx := context.Background()
	t := &entity.Team{}

	row := r.pool.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	if err := scanTeam(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TeamRepository) ListByUser(userID string) ([]entity.Team, error) {
	return r.list(`SELECT `+teamColumns+` FROM teams WHERE user_id_one = $1 OR user_id_two = $1 ORDER BY created_at`, userID)
}

func (r *TeamRepository) List() ([]entity.Team, error) {
	return r.list(`SELECT ` + teamColumns + ` FROM teams ORDER BY created_at`)
}

func (r *TeamRepository) list(query string, args ...any) ([]entity.Team, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entity.Team, 0)
	for rows.Next() {
		var t entity.Team
		if err := scanTeam(rows, &t); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) Update(t *entity.Team) error {
	ctx := context.Background()
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE teams
		SET team_name = $1, updated_at = $2
		WHERE id = $3
	`, t.TeamName, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TeamRepository = (*TeamRepository)(nil)
