package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser пользователь внешнего сервиса аутентификации
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email *string   `json:"email"`
}

// BotSession сохранённый вход Telegram-пользователя
type BotSession struct {
	TelegramID int64     `json:"telegram_id"`
	UserID     uuid.UUID `json:"user_id"`
	Email      *string   `json:"email"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// User возвращает пользователя, которому принадлежит сессия
func (s *BotSession) User() *AuthUser {
	return &AuthUser{ID: s.UserID, Email: s.Email}
}
