package common

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithClient создаёт HandlerContext и загружает клиента пользователя
func WithClient(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)
	hc.LoadClient()
	handler(hc)
}

// WithSignedIn создаёт HandlerContext и проверяет что пользователь вошёл
// При ошибке автоматически отвечает пользователю
func WithSignedIn(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if err := hc.RequireSignedIn(); err != nil {
		h.Logger.Info("Signed-in check failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("data", callback.Data))
		hc.AnswerAlert(ErrorMessage(err))
		return
	}

	handler(hc)
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}

// LogAndAnswer логирует действие и отвечает на callback
func LogAndAnswer(hc *HandlerContext, message string, answer string) {
	fields := []zap.Field{zap.Int64("telegram_id", hc.TelegramID)}
	if hc.Client != nil {
		if user := hc.Client.Session.CurrentUser(); user != nil {
			fields = append(fields, zap.String("user_id", user.ID.String()))
		}
	}
	hc.Handler.Logger.Info(message, fields...)
	hc.Answer(answer)
}
