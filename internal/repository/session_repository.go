package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository хранит входы Telegram-пользователей между перезапусками бота
type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{Repository: base.NewRepository(pool)}
}

// Save создаёт или заменяет сессию Telegram-пользователя
func (r *SessionRepository) Save(ctx context.Context, session *model.BotSession) error {
	query := `
		INSERT INTO bot_sessions (telegram_id, user_id, email, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE
		SET user_id = EXCLUDED.user_id, email = EXCLUDED.email, expires_at = EXCLUDED.expires_at
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		session.TelegramID,
		session.UserID,
		session.Email,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)

	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// GetByTelegramID получает сессию по Telegram ID
func (r *SessionRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.BotSession, error) {
	query := `
		SELECT telegram_id, user_id, email, expires_at, created_at
		FROM bot_sessions
		WHERE telegram_id = $1
	`

	var session model.BotSession
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&session.TelegramID,
		&session.UserID,
		&session.Email,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Сессии нет
		}
		return nil, fmt.Errorf("get session by telegram id: %w", err)
	}

	return &session, nil
}

// Delete удаляет сессию (выход)
func (r *SessionRepository) Delete(ctx context.Context, telegramID int64) error {
	query := `DELETE FROM bot_sessions WHERE telegram_id = $1`

	if _, err := r.ExecAffected(ctx, query, telegramID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// DeleteExpired удаляет истёкшие сессии и возвращает Telegram ID их владельцев
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
		DELETE FROM bot_sessions
		WHERE expires_at <= $1
		RETURNING telegram_id
	`

	rows, err := r.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("delete expired sessions: %w", err)
	}
	defer rows.Close()

	var telegramIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan expired session: %w", err)
		}
		telegramIDs = append(telegramIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired sessions: %w", err)
	}

	return telegramIDs, nil
}
