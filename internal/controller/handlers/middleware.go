package handlers

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// requireClient возвращает клиента отправителя сообщения
// Возвращает client и true если OK, nil и false если сообщения нет
func (h *Handlers) requireClient(ctx context.Context, update *models.Update) (*service.Client, bool) {
	if update.Message == nil || update.Message.From == nil {
		return nil, false
	}
	return h.registry.Get(ctx, update.Message.From.ID), true
}

// requireSignedIn проверяет что отправитель вошёл
func (h *Handlers) requireSignedIn(ctx context.Context, b *bot.Bot, update *models.Update) (*service.Client, bool) {
	client, ok := h.requireClient(ctx, update)
	if !ok {
		return nil, false
	}

	if !client.Session.IsLoggedIn() {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(service.ErrUnauthenticated))
		return nil, false
	}

	return client, true
}
