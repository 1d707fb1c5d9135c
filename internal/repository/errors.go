package repository

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/beachrooms_bot/internal/repository/base"
)

// ErrDuplicate возвращается при нарушении уникальности (например, повторное добавление в избранное)
var ErrDuplicate = errors.New("duplicate record")

// wrapDuplicate сохраняет сообщение сервера и помечает ошибку как ErrDuplicate
func wrapDuplicate(op string, err error) error {
	if base.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
