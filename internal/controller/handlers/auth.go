package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const promptMessageKey = "prompt_message_id"

// HandleSignIn начинает диалог входа: ждём access token
func (h *Handlers) HandleSignIn(ctx context.Context, b *bot.Bot, update *models.Update) {
	client, ok := h.requireClient(ctx, update)
	if !ok {
		return
	}

	if user := client.Session.CurrentUser(); user != nil {
		text, kb := common.BuildMainMenuScreen(user)
		h.sendScreen(ctx, b, update.Message.Chat.ID, "✅ You are already signed in.\n\n"+text, kb)
		return
	}

	h.stateManager.SetState(client.TelegramID, state.StateAwaitingToken)

	h.logger.Info("Sign-in started", zap.Int64("telegram_id", client.TelegramID))

	prompt, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		ParseMode: models.ParseModeHTML,
		Text: "🔐 <b>Sign in</b>\n\n" +
			"Send the access token from the BeachRooms app (Profile → Connect Telegram).\n\n" +
			"The message with the token is deleted right after it is read.\n\n" +
			"To cancel use /cancel",
	})
	if err != nil {
		h.logger.Error("Failed to send sign-in prompt", zap.Error(err))
		return
	}

	h.stateManager.SetData(client.TelegramID, promptMessageKey, prompt.ID)
}

// handleTokenStep проверяет присланный токен и выполняет вход
func (h *Handlers) handleTokenStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	token := strings.TrimSpace(update.Message.Text)

	// Токен не должен оставаться в истории чата
	h.deleteMessage(ctx, b, chatID, update.Message.ID)

	if len(token) < TokenMinLength || len(token) > TokenMaxLength {
		h.logger.Warn("Token has invalid length",
			zap.Int64("telegram_id", telegramID),
			zap.Int("length", len(token)))
		h.sendError(ctx, b, chatID, "❌ That doesn't look like an access token.\n\nTry again or use /cancel")
		return
	}

	user, err := h.authService.SignInWithToken(ctx, telegramID, token)
	if err != nil {
		h.sendError(ctx, b, chatID, fmt.Sprintf("%s\n\nTry again or use /cancel", common.ErrorMessage(err)))
		return
	}

	if promptID, ok := h.stateManager.GetData(telegramID, promptMessageKey); ok {
		if id, ok := promptID.(int); ok {
			h.deleteMessage(ctx, b, chatID, id)
		}
	}
	h.stateManager.ClearState(telegramID)

	expiresAt := h.registry.Get(ctx, telegramID).Session.ExpiresAt()
	h.sendMessage(ctx, b, chatID, common.BuildSignedInText(user, h.now(), expiresAt))
}
