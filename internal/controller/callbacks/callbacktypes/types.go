package callbacktypes

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// StateManager обрывает незаконченные диалоги пользователя
type StateManager interface {
	ClearState(telegramID int64)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	Registry     *service.ClientRegistry
	Classrooms   *service.ClassroomService
	Auth         *service.AuthService
	StateManager StateManager
	Logger       *zap.Logger

	// Функции-хэндлеры из основного контроллера
	HandleSignIn func(ctx context.Context, b *bot.Bot, update *models.Update)
}
