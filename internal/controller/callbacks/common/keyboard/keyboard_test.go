package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_GridSplitsRows(t *testing.T) {
	kb := NewBuilder().
		Grid(2, Button("a", "1"), Button("b", "2"), Button("c", "3")).
		Row().
		AddBackToMainButton().
		Build()

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)
	assert.Equal(t, "back_to_main", kb.InlineKeyboard[2][0].CallbackData)
}

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("rooms_page:", 0, 1))

	first := PaginationButtons("rooms_page:", 0, 3)
	require.Len(t, first, 2)
	assert.Equal(t, "📄 1/3", first[0].Text)
	assert.Equal(t, "rooms_page:1", first[1].CallbackData)

	middle := PaginationButtons("rooms_page:", 1, 3)
	require.Len(t, middle, 3)
	assert.Equal(t, "rooms_page:0", middle[0].CallbackData)
	assert.Equal(t, "noop", middle[1].CallbackData)
	assert.Equal(t, "rooms_page:2", middle[2].CallbackData)

	last := PaginationButtons("rooms_page:", 2, 3)
	require.Len(t, last, 2)
	assert.Equal(t, "rooms_page:1", last[0].CallbackData)
}

func TestTotalPagesAndClamp(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 2, TotalPages(9, 8))

	assert.Equal(t, 0, ClampPage(-1, 3))
	assert.Equal(t, 2, ClampPage(7, 3))
	assert.Equal(t, 1, ClampPage(1, 3))
}
