package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// callbackArg возвращает часть callback data после первого ':'
func callbackArg(data string) (string, error) {
	_, arg, found := strings.Cut(data, ":")
	if !found || arg == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return arg, nil
}

// ParseIntFromCallback извлекает число из callback data
// Например: "rooms_page:2" -> 2
func ParseIntFromCallback(data string) (int, error) {
	arg, err := callbackArg(data)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return n, nil
}

// ParseUUIDFromCallback извлекает UUID из callback data
// Например: "view_room:8f3c...-..." -> uuid
func ParseUUIDFromCallback(data string) (uuid.UUID, error) {
	arg, err := callbackArg(data)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return id, nil
}

// IsMessageNotModifiedError проверяет ошибку Telegram "message is not modified"
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
