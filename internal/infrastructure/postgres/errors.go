package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fitleague/fitleague/internal/domain/repository"
)

const uniqueViolation = "23505"

// mapConstraintError translates postgres unique-violation errors into the
// repository sentinels the application layer matches on.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "events_user_goal_day_uniq":
			return repository.ErrDuplicateDay
		case "goals_user_type_uniq":
			return repository.ErrDuplicateGoalType
		case "users_email_uniq":
			return repository.ErrDuplicateEmail
		}
	}
	return err
}
