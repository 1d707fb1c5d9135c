package rooms

import (
	"context"
	"errors"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleViewRoom выбирает аудиторию и показывает её карточку
func HandleViewRoom(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	classroomID, err := common.ParseUUIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse classroom ID", zap.String("data", callback.Data), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		room, err := h.Classrooms.GetRoom(ctx, classroomID)
		if err != nil {
			if errors.Is(err, service.ErrClassroomNotFound) {
				// Аудиторию удалили, пока список был открыт
				hc.Client.Selection.SetSelectedRoom(nil)
			}
			common.HandleError(hc, err, "get room")
			return
		}

		hc.Client.Selection.SetSelectedRoom(room)
		showSelectedRoom(hc, "")
	})
}

// HandleToggleFavorite сохраняет или убирает выбранную аудиторию из избранного
func HandleToggleFavorite(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		room := hc.Client.Selection.SelectedRoom()
		if room == nil {
			showSelectedRoom(hc, "No room selected")
			return
		}

		favorites := hc.Client.Favorites
		classroomID := room.Classroom.ID

		var (
			err    error
			answer string
		)
		if favorites.IsFavorite(classroomID) {
			err = favorites.Remove(ctx, classroomID)
			answer = "Removed from saved rooms"
		} else {
			err = favorites.Add(ctx, classroomID)
			answer = "⭐ Saved"
		}

		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				hc.AnswerAlert(common.ErrorMessage(err))
				return
			}
			common.HandleError(hc, err, "toggle favorite")
			return
		}

		common.LogAndAnswer(hc, "Favorite toggled", answer)
		text, kb := common.BuildRoomDetailScreen(room, favorites.IsFavorite(classroomID))
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to refresh room card", zap.Error(err))
		}
	})
}

// HandleCloseRoom снимает выбор и возвращает к списку
func HandleCloseRoom(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Client.Selection.SetSelectedRoom(nil)

		rooms, err := h.Classrooms.ListRooms(ctx)
		if err != nil {
			common.HandleError(hc, err, "list rooms")
			return
		}

		text, kb := common.BuildRoomListScreen(rooms, 0)
		hc.Show(text, kb, "")
	})
}

// showSelectedRoom рисует карточку того, что сейчас лежит в выборе
func showSelectedRoom(hc *common.HandlerContext, answer string) {
	room := hc.Client.Selection.SelectedRoom()

	isFavorite := false
	if room != nil {
		isFavorite = hc.Client.Favorites.IsFavorite(room.Classroom.ID)
	}

	text, kb := common.BuildRoomDetailScreen(room, isFavorite)
	hc.Show(text, kb, answer)
}
