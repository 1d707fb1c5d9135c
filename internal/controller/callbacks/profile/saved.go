package profile

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandleSaved показывает профиль с избранным по последнему загруженному списку
func HandleSaved(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		showSaved(hc, "")
	})
}

// HandleRefreshSaved перезагружает избранное по запросу пользователя
func HandleRefreshSaved(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSignedIn(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Client.Favorites.Refetch(ctx)

		answer := "🔄 Updated"
		if hc.Client.Favorites.Error() != "" {
			answer = "⚠️ Couldn't refresh"
		}
		showSaved(hc, answer)
	})
}

// HandleRemoveSaved спрашивает подтверждение удаления из избранного
func HandleRemoveSaved(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	classroomID, err := common.ParseUUIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse classroom ID", zap.String("data", callback.Data), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithSignedIn(ctx, b, callback, h, func(hc *common.HandlerContext) {
		classroom := findSaved(hc.Client.Favorites.Favorites(), classroomID)
		if classroom == nil {
			// Уже удалена в другом месте
			showSaved(hc, "")
			return
		}

		text, kb := common.BuildConfirmRemoveScreen(classroom)
		hc.Show(text, kb, "")
	})
}

// HandleConfirmRemove удаляет аудиторию из избранного
func HandleConfirmRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	classroomID, err := common.ParseUUIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse classroom ID", zap.String("data", callback.Data), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithSignedIn(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := hc.Client.Favorites.Remove(ctx, classroomID); err != nil {
			common.HandleError(hc, err, "remove favorite")
			return
		}

		h.Logger.Info("Saved room removed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("classroom_id", classroomID.String()))
		showSaved(hc, "🗑 Removed")
	})
}

func showSaved(hc *common.HandlerContext, answer string) {
	text, kb := common.BuildSavedScreen(hc.Client.Session.CurrentUser(), hc.Client.Favorites.State())
	hc.Show(text, kb, answer)
}

func findSaved(favorites []model.Favorite, classroomID uuid.UUID) *model.Classroom {
	for _, fav := range favorites {
		if fav.Classroom != nil && fav.Classroom.ID == classroomID {
			return fav.Classroom
		}
	}
	return nil
}
