package rooms

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleRoomsPage показывает страницу списка аудиторий
func HandleRoomsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	page, err := common.ParseIntFromCallback(callback.Data)
	if err != nil {
		h.Logger.Warn("Failed to parse rooms page", zap.String("data", callback.Data), zap.Error(err))
		page = 0
	}

	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		rooms, err := h.Classrooms.ListRooms(ctx)
		if err != nil {
			common.HandleError(hc, err, "list rooms")
			return
		}

		text, kb := common.BuildRoomListScreen(rooms, page)
		hc.Show(text, kb, "")
	})
}

// HandleAvailablePage показывает страницу только свободных аудиторий
func HandleAvailablePage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	page, err := common.ParseIntFromCallback(callback.Data)
	if err != nil {
		h.Logger.Warn("Failed to parse available page", zap.String("data", callback.Data), zap.Error(err))
		page = 0
	}

	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		available, total, err := h.Classrooms.ListAvailableRooms(ctx)
		if err != nil {
			common.HandleError(hc, err, "list available rooms")
			return
		}

		text, kb := common.BuildAvailableListScreen(available, total, page)
		hc.Show(text, kb, "")
	})
}
