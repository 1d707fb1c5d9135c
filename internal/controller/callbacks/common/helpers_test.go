package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Freeeeeet/beachrooms_bot/internal/auth"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUIDFromCallback(t *testing.T) {
	id := uuid.New()

	got, err := ParseUUIDFromCallback(ViewRoomData(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseUUIDFromCallback("view_room:not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseUUIDFromCallback("view_room")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseIntFromCallback(t *testing.T) {
	page, err := ParseIntFromCallback(RoomsPageData(3))
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = ParseIntFromCallback("rooms_page:-1")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseIntFromCallback("rooms_page:")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestErrorMessage(t *testing.T) {
	duplicate := &service.RemoteError{
		Op:      "add favorite",
		Message: "duplicate key value violates unique constraint",
		Err:     fmt.Errorf("insert favorite: %w", repository.ErrDuplicate),
	}
	remote := &service.RemoteError{Op: "remove favorite", Message: "connection refused", Err: errors.New("dial")}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthenticated", fmt.Errorf("%w to add favorites", service.ErrUnauthenticated), "🔐 Please sign in first: /signin"},
		{"duplicate", duplicate, "⭐ This room is already in your saved rooms"},
		{"remote", remote, "⚠️ connection refused"},
		{"not found", service.ErrClassroomNotFound, "❌ Room not found"},
		{"expired token", auth.ErrTokenExpired, "⌛ This token has expired. Get a fresh one and try again"},
		{"invalid token", auth.ErrInvalidToken, "❌ This token is not valid"},
		{"bad callback", ErrInvalidFormat, "❌ Invalid button data"},
		{"other", errors.New("boom"), "❌ Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestIsMessageNotModifiedError(t *testing.T) {
	assert.False(t, IsMessageNotModifiedError(nil))
	assert.True(t, IsMessageNotModifiedError(errors.New("Bad Request: message is not modified: specified new message content")))
	assert.False(t, IsMessageNotModifiedError(errors.New("Bad Request: chat not found")))
}
