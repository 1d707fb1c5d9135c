package common

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/availability"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// RoomsPageSize аудиторий на одной странице списка
const RoomsPageSize = 8

// BuildMainMenuScreen формирует главное меню
func BuildMainMenuScreen(user *model.AuthUser) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("🏖 <b>BeachRooms</b>\n\n")
	sb.WriteString("Find an open classroom on campus and keep your favorites close.\n\n")

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🏫 Rooms", RoomsPageData(0)))

	if user != nil {
		sb.WriteString("👤 Signed in as " + userLabel(user))
		kb.Row(keyboard.Button("⭐ Saved rooms", Saved))
	} else {
		sb.WriteString("🔐 Sign in to save rooms.")
		kb.Row(keyboard.Button("🔐 Sign in", SignIn))
	}

	return sb.String(), kb.Build()
}

// BuildRoomListScreen формирует страницу списка всех аудиторий со статистикой
func BuildRoomListScreen(rooms []model.ClassroomAvailability, page int) (string, *models.InlineKeyboardMarkup) {
	return buildRoomList("🏫 <b>Rooms</b>", rooms, len(rooms), page, RoomsPage)
}

// BuildAvailableListScreen формирует страницу только свободных аудиторий.
// total это размер всего каталога, а не отфильтрованного списка
func BuildAvailableListScreen(available []model.ClassroomAvailability, total, page int) (string, *models.InlineKeyboardMarkup) {
	return buildRoomList("🟢 <b>Available rooms</b>", available, total, page, AvailablePage)
}

func buildRoomList(
	title string,
	rooms []model.ClassroomAvailability,
	total, page int,
	pagePrefix string,
) (string, *models.InlineKeyboardMarkup) {
	totalPages := keyboard.TotalPages(len(rooms), RoomsPageSize)
	page = keyboard.ClampPage(page, totalPages)

	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	sb.WriteString(fmt.Sprintf("🟢 Available now: <b>%d</b>\n", availability.CountAvailable(rooms)))
	sb.WriteString(fmt.Sprintf("📊 Total: <b>%d</b>\n", total))

	kb := keyboard.NewBuilder()

	if len(rooms) == 0 {
		sb.WriteString("\nNo rooms found.")
	} else {
		sb.WriteString("\nTap a room to see details:")

		start := page * RoomsPageSize
		end := min(start+RoomsPageSize, len(rooms))

		buttons := make([]models.InlineKeyboardButton, 0, end-start)
		for _, room := range rooms[start:end] {
			display := formatting.GetAvailabilityDisplay(room.Status)
			buttons = append(buttons, keyboard.Button(
				display.Emoji+" "+room.Classroom.DisplayName(),
				ViewRoomData(room.Classroom.ID),
			))
		}
		kb.Grid(2, buttons...)
	}

	kb.AddPagination(pagePrefix, page, totalPages).
		Row(
			keyboard.Button("🔄 Refresh", fmt.Sprintf("%s%d", pagePrefix, page)),
			keyboard.Button("⭐ Saved", Saved),
		).
		AddBackToMainButton()

	return sb.String(), kb.Build()
}

// BuildRoomDetailScreen формирует карточку выбранной аудитории.
// room == nil это пустое состояние "No room selected"
func BuildRoomDetailScreen(room *model.ClassroomAvailability, isFavorite bool) (string, *models.InlineKeyboardMarkup) {
	if room == nil {
		return "🏫 <b>No room selected</b>\n\nPick a room from the list to see its details.",
			keyboard.NewBuilder().
				Row(keyboard.Button("🏫 Rooms", RoomsPageData(0))).
				AddBackToMainButton().
				Build()
	}

	c := room.Classroom

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏫 <b>%s</b>\n", html.EscapeString(c.DisplayName())))
	if c.Building != nil && c.Building.Name != "" {
		sb.WriteString(fmt.Sprintf("🏢 %s\n", html.EscapeString(c.Building.Name)))
	}
	if c.Floor != nil && *c.Floor != "" {
		sb.WriteString(fmt.Sprintf("🛗 Floor %s\n", html.EscapeString(*c.Floor)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("📊 Status: %s\n", html.EscapeString(formatting.FormatStatusLine(*room))))
	sb.WriteString(fmt.Sprintf("👥 Capacity: %s\n", formatting.PluralizeSeats(c.Capacity)))
	if c.IsAccessible {
		sb.WriteString("♿️ Wheelchair accessible\n")
	}

	if amenities := formatting.FormatAmenities(c.Amenities); len(amenities) > 0 {
		sb.WriteString("\n<b>Amenities</b>\n")
		for _, label := range amenities {
			sb.WriteString(html.EscapeString(label) + "\n")
		}
	}

	favoriteText := "☆ Save room"
	if isFavorite {
		favoriteText = "★ Saved"
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button(favoriteText, ToggleFavorite)).
		Row(
			keyboard.Button("⬅️ Rooms", RoomsPageData(0)),
			keyboard.Button("✖️ Close", CloseRoom),
		).
		Build()

	return sb.String(), kb
}

// BuildSavedScreen формирует экран профиля с сохранёнными аудиториями
func BuildSavedScreen(user *model.AuthUser, state service.FavoritesState) (string, *models.InlineKeyboardMarkup) {
	if user == nil {
		return "⭐ <b>Saved rooms</b>\n\n🔐 Sign in to see your saved rooms.",
			keyboard.NewBuilder().
				Row(keyboard.Button("🔐 Sign in", SignIn)).
				AddBackToMainButton().
				Build()
	}

	var sb strings.Builder
	sb.WriteString("👤 " + userLabel(user) + "\n\n")
	sb.WriteString("⭐ <b>Saved rooms</b>")
	if n := len(state.Favorites); n > 0 {
		sb.WriteString(" · " + formatting.PluralizeRooms(n))
	}
	sb.WriteString("\n\n")

	kb := keyboard.NewBuilder()

	switch {
	case state.IsLoading && len(state.Favorites) == 0:
		sb.WriteString("⏳ Loading...\n")
	case len(state.Favorites) == 0 && state.Error == "":
		sb.WriteString("No saved rooms yet. Open a room and tap ☆ to save it.\n")
	}

	for _, fav := range state.Favorites {
		c := fav.Classroom
		if c == nil {
			continue
		}
		line := "📍 " + html.EscapeString(c.DisplayName())
		if c.Building != nil && c.Building.Name != "" {
			line += " · " + html.EscapeString(c.Building.Name)
		}
		if !fav.CreatedAt.IsZero() {
			line += " <i>(saved " + formatting.FormatDate(fav.CreatedAt) + ")</i>"
		}
		sb.WriteString(line + "\n")

		kb.Row(
			keyboard.Button("🏫 "+c.DisplayName(), ViewRoomData(c.ID)),
			keyboard.Button("🗑", RemoveSavedData(c.ID)),
		)
	}

	if state.Error != "" {
		sb.WriteString("\n⚠️ Couldn't load saved rooms: " + html.EscapeString(state.Error) + "\n")
	}

	kb.Row(keyboard.Button("🔄 Refresh", RefreshSaved)).
		Row(
			keyboard.Button("🏫 Rooms", RoomsPageData(0)),
			keyboard.Button("🚪 Sign out", SignOut),
		).
		AddBackToMainButton()

	return sb.String(), kb.Build()
}

// BuildConfirmRemoveScreen диалог подтверждения удаления из избранного
func BuildConfirmRemoveScreen(classroom *model.Classroom) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"🗑 <b>Remove saved room</b>\n\nRemove <b>%s</b> from your saved rooms?",
		html.EscapeString(classroom.DisplayName()),
	)

	kb := keyboard.NewBuilder().
		AddRows(keyboard.ConfirmCancelButtons("Remove", ConfirmRemoveData(classroom.ID), Saved)).
		Build()

	return text, kb
}

// BuildSignOutScreen диалог подтверждения выхода
func BuildSignOutScreen(user *model.AuthUser) (string, *models.InlineKeyboardMarkup) {
	text := "🚪 <b>Sign out</b>\n\nAre you sure you want to sign out?"
	if user != nil {
		text = fmt.Sprintf("🚪 <b>Sign out</b>\n\nSign out of %s?", userLabel(user))
	}

	kb := keyboard.NewBuilder().
		AddRows(keyboard.ConfirmCancelButtons("Sign out", ConfirmSignOut, Saved)).
		Build()

	return text, kb
}

// BuildSignedInText сообщение об успешном входе
func BuildSignedInText(user *model.AuthUser, now, expiresAt time.Time) string {
	return fmt.Sprintf(
		"✅ Signed in as %s\n\n⌛ Session expires in %s.\n\nUse /saved to see your saved rooms.",
		userLabel(user),
		formatting.FormatUntil(now, expiresAt),
	)
}

func userLabel(user *model.AuthUser) string {
	if user.Email != nil && *user.Email != "" {
		return html.EscapeString(*user.Email)
	}
	return "your account"
}
