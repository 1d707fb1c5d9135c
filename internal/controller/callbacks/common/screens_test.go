package common

import (
	"fmt"
	"testing"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room(number string, status model.AvailabilityStatus) model.ClassroomAvailability {
	return model.ClassroomAvailability{
		Classroom: model.Classroom{
			ID:         uuid.New(),
			RoomNumber: number,
			Capacity:   30,
			Amenities:  model.NewAmenitySet(),
			Building:   &model.Building{Code: "VEC", Name: "Vivian Engineering Center"},
		},
		Status: status,
	}
}

func callbackData(kb *models.InlineKeyboardMarkup) []string {
	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			data = append(data, btn.CallbackData)
		}
	}
	return data
}

func TestBuildRoomListScreen_StatsAndPaging(t *testing.T) {
	rooms := make([]model.ClassroomAvailability, 0, 10)
	for i := 0; i < 10; i++ {
		status := model.AvailabilityOccupied
		if i%3 == 0 {
			status = model.AvailabilityAvailable
		}
		rooms = append(rooms, room(fmt.Sprintf("%d", 100+i), status))
	}

	text, kb := BuildRoomListScreen(rooms, 1)

	assert.Contains(t, text, "Available now: <b>4</b>")
	assert.Contains(t, text, "Total: <b>10</b>")

	data := callbackData(kb)
	assert.Contains(t, data, ViewRoomData(rooms[8].Classroom.ID))
	assert.Contains(t, data, ViewRoomData(rooms[9].Classroom.ID))
	assert.NotContains(t, data, ViewRoomData(rooms[0].Classroom.ID))
	assert.Contains(t, data, "rooms_page:0")
}

func TestBuildRoomListScreen_Empty(t *testing.T) {
	text, kb := BuildRoomListScreen(nil, 5)

	assert.Contains(t, text, "No rooms found")
	assert.Contains(t, callbackData(kb), "rooms_page:0")
}

func TestBuildAvailableListScreen_KeepsFilterAcrossPages(t *testing.T) {
	available := make([]model.ClassroomAvailability, 0, 9)
	for i := 0; i < 9; i++ {
		available = append(available, room(fmt.Sprintf("%d", 200+i), model.AvailabilityAvailable))
	}

	text, kb := BuildAvailableListScreen(available, 25, 0)

	assert.Contains(t, text, "Available now: <b>9</b>")
	assert.Contains(t, text, "Total: <b>25</b>")

	data := callbackData(kb)
	assert.Contains(t, data, AvailablePageData(1))
	assert.Contains(t, data, AvailablePageData(0))
	for _, d := range data {
		assert.NotContains(t, d, RoomsPage)
	}
}

func TestBuildRoomDetailScreen_NoRoomSelected(t *testing.T) {
	text, _ := BuildRoomDetailScreen(nil, false)
	assert.Contains(t, text, "No room selected")
}

func TestBuildRoomDetailScreen(t *testing.T) {
	r := room("330", model.AvailabilityAvailable)
	floor := "3"
	r.Classroom.Floor = &floor
	r.Classroom.IsAccessible = true
	r.Classroom.Amenities = model.NewAmenitySet("projector", "outlets")
	r.StatusText = "Free until 2 PM"

	text, kb := BuildRoomDetailScreen(&r, false)

	assert.Contains(t, text, "VEC 330")
	assert.Contains(t, text, "Floor 3")
	assert.Contains(t, text, "🟢 Available · Free until 2 PM")
	assert.Contains(t, text, "30 seats")
	assert.Contains(t, text, "Wheelchair accessible")
	assert.Contains(t, text, "Power Outlets")
	assert.Equal(t, "☆ Save room", kb.InlineKeyboard[0][0].Text)
	assert.Contains(t, callbackData(kb), CloseRoom)

	_, kb = BuildRoomDetailScreen(&r, true)
	assert.Equal(t, "★ Saved", kb.InlineKeyboard[0][0].Text)
}

func TestBuildRoomDetailScreen_EscapesHTML(t *testing.T) {
	r := room("<b>1</b>", model.AvailabilityUnknown)

	text, _ := BuildRoomDetailScreen(&r, false)

	assert.Contains(t, text, "&lt;b&gt;1&lt;/b&gt;")
}

func TestBuildSavedScreen(t *testing.T) {
	email := "sam@example.edu"
	user := &model.AuthUser{ID: uuid.New(), Email: &email}

	t.Run("signed out", func(t *testing.T) {
		text, kb := BuildSavedScreen(nil, service.FavoritesState{})
		assert.Contains(t, text, "Sign in")
		assert.Contains(t, callbackData(kb), SignIn)
	})

	t.Run("empty", func(t *testing.T) {
		text, _ := BuildSavedScreen(user, service.FavoritesState{})
		assert.Contains(t, text, "No saved rooms yet")
		assert.Contains(t, text, email)
	})

	t.Run("loading", func(t *testing.T) {
		text, _ := BuildSavedScreen(user, service.FavoritesState{IsLoading: true})
		assert.Contains(t, text, "Loading")
	})

	t.Run("list with error keeps last good list", func(t *testing.T) {
		r := room("330", model.AvailabilityAvailable)
		state := service.FavoritesState{
			Favorites: []model.Favorite{{
				ID:          uuid.New(),
				ClassroomID: r.Classroom.ID,
				CreatedAt:   time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC),
				Classroom:   &r.Classroom,
			}},
			Error:     "connection refused",
		}

		text, kb := BuildSavedScreen(user, state)

		assert.Contains(t, text, "VEC 330 · Vivian Engineering Center <i>(saved Sep 2, 2024)</i>")
		assert.Contains(t, text, "Saved rooms</b> · 1 room")
		assert.Contains(t, text, "connection refused")
		assert.NotContains(t, text, "No saved rooms yet")
		data := callbackData(kb)
		assert.Contains(t, data, RemoveSavedData(r.Classroom.ID))
		assert.Contains(t, data, RefreshSaved)
		assert.Contains(t, data, SignOut)
	})
}

func TestConfirmScreens(t *testing.T) {
	r := room("330", model.AvailabilityAvailable)

	text, kb := BuildConfirmRemoveScreen(&r.Classroom)
	assert.Contains(t, text, "VEC 330")
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, []string{ConfirmRemoveData(r.Classroom.ID), Saved}, callbackData(kb))

	_, kb = BuildSignOutScreen(nil)
	assert.Equal(t, []string{ConfirmSignOut, Saved}, callbackData(kb))
}

func TestBuildMainMenuScreen(t *testing.T) {
	_, kb := BuildMainMenuScreen(nil)
	assert.Contains(t, callbackData(kb), SignIn)

	_, kb = BuildMainMenuScreen(&model.AuthUser{ID: uuid.New()})
	assert.Contains(t, callbackData(kb), Saved)
}

func TestBuildSignedInText(t *testing.T) {
	now := time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)
	text := BuildSignedInText(&model.AuthUser{ID: uuid.New()}, now, now.Add(time.Hour))

	assert.Contains(t, text, "your account")
	assert.Contains(t, text, "1 h")
}
