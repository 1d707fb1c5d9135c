package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	client, ok := h.requireClient(ctx, update)
	if !ok {
		return
	}

	h.logger.Info("User started bot",
		zap.Int64("telegram_id", client.TelegramID),
		zap.Bool("signed_in", client.Session.IsLoggedIn()))

	text, kb := common.BuildMainMenuScreen(client.Session.CurrentUser())
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 <b>Commands</b>\n\n" +
		"/rooms - All rooms with live status\n" +
		"/available - Rooms that are open now\n" +
		"/saved - Your saved rooms\n" +
		"/signin - Sign in with your access token\n" +
		"/signout - Sign out\n" +
		"/cancel - Cancel the current dialog\n" +
		"/help - Show this help\n\n" +
		"Open a room and tap ☆ to save it."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleRooms обрабатывает команду /rooms
func (h *Handlers) HandleRooms(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	rooms, err := h.classrooms.ListRooms(ctx)
	if err != nil {
		h.logger.Error("Failed to list rooms", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	text, kb := common.BuildRoomListScreen(rooms, 0)
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleAvailable обрабатывает команду /available - только свободные аудитории
func (h *Handlers) HandleAvailable(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	available, total, err := h.classrooms.ListAvailableRooms(ctx)
	if err != nil {
		h.logger.Error("Failed to list available rooms", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	if len(available) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "😕 No rooms are open right now.\n\nSee all rooms: /rooms")
		return
	}

	text, kb := common.BuildAvailableListScreen(available, total, 0)
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleSaved обрабатывает команду /saved - профиль с избранным
func (h *Handlers) HandleSaved(ctx context.Context, b *bot.Bot, update *models.Update) {
	client, ok := h.requireClient(ctx, update)
	if !ok {
		return
	}

	if client.Session.IsLoggedIn() {
		client.Favorites.Refetch(ctx)
	}

	text, kb := common.BuildSavedScreen(client.Session.CurrentUser(), client.Favorites.State())
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleSignOut обрабатывает команду /signout
func (h *Handlers) HandleSignOut(ctx context.Context, b *bot.Bot, update *models.Update) {
	client, ok := h.requireSignedIn(ctx, b, update)
	if !ok {
		return
	}

	text, kb := common.BuildSignOutScreen(client.Session.CurrentUser())
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Nothing to cancel.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Cancelled.\n\nUse /help to see available commands.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	// Текст сообщения не логируем: в нём может быть токен
	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateAwaitingToken:
		h.handleTokenStep(ctx, b, update)
	default:
		// Если нет активного состояния, игнорируем
	}
}
