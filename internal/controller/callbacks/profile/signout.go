package profile

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleSignOut спрашивает подтверждение выхода
func HandleSignOut(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSignedIn(ctx, b, callback, h, func(hc *common.HandlerContext) {
		text, kb := common.BuildSignOutScreen(hc.Client.Session.CurrentUser())
		hc.Show(text, kb, "")
	})
}

// HandleConfirmSignOut завершает вход и показывает главное меню
func HandleConfirmSignOut(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithClient(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := h.Auth.SignOut(ctx, hc.TelegramID); err != nil {
			common.HandleError(hc, err, "sign out")
			return
		}
		hc.ClearState()

		text, kb := common.BuildMainMenuScreen(nil)
		hc.Show(text, kb, "👋 Signed out")
	})
}
