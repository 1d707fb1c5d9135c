package service

import (
	"fmt"

	"github.com/Freeeeeet/beachrooms_bot/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// fmtDuplicate имитирует ошибку репозитория при повторном добавлении
func fmtDuplicate() error {
	pgErr := &pgconn.PgError{
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "favorites_user_classroom_key"`,
	}
	return fmt.Errorf("insert favorite: %w: %w", repository.ErrDuplicate, pgErr)
}
