package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/profile"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/rooms"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Common Navigation =====
	case data == common.BackToMain:
		common.HandleBackToMain(ctx, b, callback, h)
	case data == common.SignIn:
		common.HandleSignIn(ctx, b, callback, h)
	case data == common.Noop:
		// No operation - просто подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Rooms =====
	case strings.HasPrefix(data, common.RoomsPage):
		rooms.HandleRoomsPage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.AvailablePage):
		rooms.HandleAvailablePage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.ViewRoom):
		rooms.HandleViewRoom(ctx, b, callback, h)
	case data == common.ToggleFavorite:
		rooms.HandleToggleFavorite(ctx, b, callback, h)
	case data == common.CloseRoom:
		rooms.HandleCloseRoom(ctx, b, callback, h)

	// ===== Profile: Saved Rooms =====
	case data == common.Saved:
		profile.HandleSaved(ctx, b, callback, h)
	case data == common.RefreshSaved:
		profile.HandleRefreshSaved(ctx, b, callback, h)
	case strings.HasPrefix(data, common.RemoveSaved):
		profile.HandleRemoveSaved(ctx, b, callback, h)
	case strings.HasPrefix(data, common.ConfirmRemove):
		profile.HandleConfirmRemove(ctx, b, callback, h)

	// ===== Profile: Sign Out =====
	case data == common.SignOut:
		profile.HandleSignOut(ctx, b, callback, h)
	case data == common.ConfirmSignOut:
		profile.HandleConfirmSignOut(ctx, b, callback, h)

	// ===== Unknown Callback =====
	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown action")
		return
	}

	h.Logger.Debug("Callback routed", zap.String("data", data))
}
