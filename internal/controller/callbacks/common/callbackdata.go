package common

import (
	"fmt"

	"github.com/google/uuid"
)

// ========================
// Callback Data Patterns
// ========================

// Навигация
const (
	BackToMain = "back_to_main"
	Noop       = "noop"
	SignIn     = "signin"
)

// Аудитории
const (
	RoomsPage      = "rooms_page:"     // rooms_page:0
	AvailablePage  = "available_page:" // available_page:0
	ViewRoom       = "view_room:"      // view_room:<uuid>
	ToggleFavorite = "toggle_favorite"
	CloseRoom      = "close_room"
)

// Профиль и избранное
const (
	Saved          = "saved"
	RefreshSaved   = "refresh_saved"
	RemoveSaved    = "remove_saved:"   // remove_saved:<uuid>
	ConfirmRemove  = "confirm_remove:" // confirm_remove:<uuid>
	SignOut        = "signout"
	ConfirmSignOut = "confirm_signout"
)

// RoomsPageData callback для страницы списка аудиторий
func RoomsPageData(page int) string {
	return fmt.Sprintf("%s%d", RoomsPage, page)
}

// AvailablePageData callback для страницы свободных аудиторий
func AvailablePageData(page int) string {
	return fmt.Sprintf("%s%d", AvailablePage, page)
}

// ViewRoomData callback для открытия аудитории
func ViewRoomData(classroomID uuid.UUID) string {
	return ViewRoom + classroomID.String()
}

// RemoveSavedData callback для удаления из избранного
func RemoveSavedData(classroomID uuid.UUID) string {
	return RemoveSaved + classroomID.String()
}

// ConfirmRemoveData callback подтверждения удаления из избранного
func ConfirmRemoveData(classroomID uuid.UUID) string {
	return ConfirmRemove + classroomID.String()
}
