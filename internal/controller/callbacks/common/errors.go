package common

import (
	"errors"

	"github.com/Freeeeeet/beachrooms_bot/internal/auth"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var remoteErr *service.RemoteError

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return "🔐 Please sign in first: /signin"
	case errors.Is(err, repository.ErrDuplicate):
		return "⭐ This room is already in your saved rooms"
	case errors.Is(err, service.ErrClassroomNotFound):
		return "❌ Room not found"
	case errors.Is(err, auth.ErrTokenExpired):
		return "⌛ This token has expired. Get a fresh one and try again"
	case errors.Is(err, auth.ErrInvalidToken):
		return "❌ This token is not valid"
	case errors.Is(err, ErrNoMessage):
		return "❌ Message is no longer available"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid button data"
	case errors.As(err, &remoteErr):
		return "⚠️ " + remoteErr.Message
	default:
		return "❌ Something went wrong"
	}
}
