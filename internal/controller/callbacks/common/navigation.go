package common

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ========================
// Common Navigation Handlers
// ========================

// HandleBackToMain возвращает пользователя к главному меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithClient(ctx, b, callback, h, func(hc *HandlerContext) {
		// Выход в меню обрывает незаконченный диалог
		hc.ClearState()

		text, kb := BuildMainMenuScreen(hc.Client.Session.CurrentUser())
		hc.Show(text, kb, "")
	})
}

// HandleSignIn начинает диалог входа из inline-кнопки
func HandleSignIn(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		AnswerCallback(ctx, b, callback.ID, ErrorMessage(ErrNoMessage))
		return
	}

	update := &models.Update{
		Message: &models.Message{
			Chat: msg.Chat,
			From: &callback.From,
		},
	}

	h.HandleSignIn(ctx, b, update)
	AnswerCallback(ctx, b, callback.ID, "")
}
