package callbacks

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Handler with Dependencies
// ========================

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	registry *service.ClientRegistry,
	classrooms *service.ClassroomService,
	authService *service.AuthService,
	stateManager callbacktypes.StateManager,
	logger *zap.Logger,
	handleSignIn func(ctx context.Context, b *bot.Bot, update *models.Update),
) *Handler {
	inner := &callbacktypes.Handler{
		Registry:     registry,
		Classrooms:   classrooms,
		Auth:         authService,
		StateManager: stateManager,
		Logger:       logger,
		HandleSignIn: handleSignIn,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Debug("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	// Вызываем роутер
	Route(ctx, b, callback, h.Handler)
}
