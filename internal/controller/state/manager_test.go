package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestManager_StateLifecycle(t *testing.T) {
	sm := NewManager(0, nil)
	const telegramID int64 = 7

	assert.Equal(t, StateNone, sm.GetState(telegramID))

	sm.SetState(telegramID, StateAwaitingToken)
	sm.SetData(telegramID, "prompt_message_id", 42)

	assert.Equal(t, StateAwaitingToken, sm.GetState(telegramID))
	value, ok := sm.GetData(telegramID, "prompt_message_id")
	require.True(t, ok)
	assert.Equal(t, 42, value)

	sm.SetState(telegramID, StateNone)
	assert.Equal(t, StateNone, sm.GetState(telegramID))
	_, ok = sm.GetData(telegramID, "prompt_message_id")
	assert.False(t, ok)
}

func TestManager_ClearState(t *testing.T) {
	sm := NewManager(0, nil)
	sm.SetState(1, StateAwaitingToken)
	sm.ClearState(1)

	assert.Equal(t, StateNone, sm.GetState(1))
}

func TestManager_AbandonedDialogExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)}
	sm := NewManager(time.Minute, clock.Now)

	sm.SetState(1, StateAwaitingToken)
	sm.SetState(2, StateAwaitingToken)

	clock.t = clock.t.Add(30 * time.Second)
	sm.SetData(2, "touched", true)
	assert.Equal(t, StateAwaitingToken, sm.GetState(1))

	clock.t = clock.t.Add(45 * time.Second)
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Equal(t, StateAwaitingToken, sm.GetState(2))

	assert.Equal(t, 1, sm.Prune())
	assert.Equal(t, StateAwaitingToken, sm.GetState(2))
}
