package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAmenitySet_Deduplicates(t *testing.T) {
	set := NewAmenitySet("Projector", "whiteboard", " projector ", "", "outlets")

	assert.Len(t, set, 3)
	assert.True(t, set.Has("PROJECTOR"))
	assert.False(t, set.Has("computer"))
	assert.Equal(t, []string{"outlets", "projector", "whiteboard"}, set.Tags())
}

func TestClassroom_DisplayName(t *testing.T) {
	c := Classroom{RoomNumber: "101"}
	assert.Equal(t, "101", c.DisplayName())

	c.Building = &Building{Code: "LA5"}
	assert.Equal(t, "LA5 101", c.DisplayName())
}
