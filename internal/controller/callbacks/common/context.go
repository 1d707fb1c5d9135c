package common

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerContext содержит общие данные для обработки callback
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	Client     *service.Client
	TelegramID int64
	ChatID     int64
}

// NewHandlerContext создаёт новый контекст обработчика
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// LoadClient загружает клиента пользователя (сессию, избранное, выбранную аудиторию)
func (hc *HandlerContext) LoadClient() {
	if hc.Client == nil {
		hc.Client = hc.Handler.Registry.Get(hc.Ctx, hc.TelegramID)
	}
}

// RequireSignedIn проверяет что пользователь вошёл
func (hc *HandlerContext) RequireSignedIn() error {
	hc.LoadClient()
	if !hc.Client.Session.IsLoggedIn() {
		return service.ErrUnauthenticated
	}
	return nil
}

// Answer отвечает на callback query
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert отвечает на callback query с alert
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// EditMessage редактирует сообщение
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
		ChatID:      hc.ChatID,
		MessageID:   hc.Message.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	// Игнорируем ошибку "message is not modified" - это не настоящая ошибка
	if IsMessageNotModifiedError(err) {
		return nil
	}

	return err
}

// Show редактирует сообщение экрана и отвечает на callback
func (hc *HandlerContext) Show(text string, keyboard *models.InlineKeyboardMarkup, answer string) {
	if err := hc.EditMessage(text, keyboard); err != nil {
		HandleError(hc, err, "edit message")
		return
	}
	hc.Answer(answer)
}

// ClearState очищает состояние пользователя
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.TelegramID)
}
