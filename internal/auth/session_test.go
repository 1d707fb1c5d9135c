package auth

import (
	"testing"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SignInNotifiesListeners(t *testing.T) {
	s := NewSession()
	require.False(t, s.IsLoggedIn())

	var got []*model.AuthUser
	unsubscribe := s.Subscribe(func(user *model.AuthUser) {
		// слушатель может читать сессию без дедлока
		assert.Equal(t, user, s.CurrentUser())
		got = append(got, user)
	})
	defer unsubscribe()

	user := &model.AuthUser{ID: uuid.New()}
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.SignIn(user, expires)

	require.Len(t, got, 1)
	assert.Same(t, user, got[0])
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, expires, s.ExpiresAt())

	s.SignOut()
	require.Len(t, got, 2)
	assert.Nil(t, got[1])
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestSession_SignOutTwiceNotifiesOnce(t *testing.T) {
	s := NewSession()
	s.SignIn(&model.AuthUser{ID: uuid.New()}, time.Now().Add(time.Hour))

	calls := 0
	s.Subscribe(func(*model.AuthUser) { calls++ })

	s.SignOut()
	s.SignOut()
	assert.Equal(t, 1, calls)
}

func TestSession_Unsubscribe(t *testing.T) {
	s := NewSession()
	calls := 0
	unsubscribe := s.Subscribe(func(*model.AuthUser) { calls++ })

	unsubscribe()
	unsubscribe()
	s.SignIn(&model.AuthUser{ID: uuid.New()}, time.Now().Add(time.Hour))

	assert.Zero(t, calls)
}
