package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func classroomRow(classroomID uuid.UUID) favoriteRow {
	return favoriteRow{
		favClassroom: pgUUID(classroomID),
		classroomID:  pgUUID(classroomID),
		buildingRef:  pgUUID(uuid.New()),
		roomNumber:   pgtype.Text{String: "330", Valid: true},
		capacity:     pgtype.Int4{Int32: 40, Valid: true},
		amenities:    []string{"projector"},
	}
}

func TestFavoriteRow_WithBuilding(t *testing.T) {
	classroomID := uuid.New()
	row := classroomRow(classroomID)
	row.buildingID = pgUUID(uuid.New())
	row.code = pgtype.Text{String: "VEC", Valid: true}
	row.name = pgtype.Text{String: "Vivian Engineering Center", Valid: true}
	row.floor = pgtype.Text{String: "3", Valid: true}

	fav := row.favorite()

	require.NotNil(t, fav.Classroom)
	assert.Equal(t, classroomID, fav.ClassroomID)
	assert.Equal(t, "VEC 330", fav.Classroom.DisplayName())
	require.NotNil(t, fav.Classroom.Floor)
	assert.Equal(t, "3", *fav.Classroom.Floor)
}

func TestFavoriteRow_MissingBuildingKeepsClassroom(t *testing.T) {
	classroomID := uuid.New()
	row := classroomRow(classroomID)

	fav := row.favorite()

	require.NotNil(t, fav.Classroom)
	assert.Nil(t, fav.Classroom.Building)
	assert.Equal(t, classroomID, fav.Classroom.ID)
	assert.Equal(t, "330", fav.Classroom.DisplayName())
	assert.Equal(t, 40, fav.Classroom.Capacity)
}

func TestFavoriteRow_DeletedClassroom(t *testing.T) {
	classroomID := uuid.New()
	row := favoriteRow{favClassroom: pgUUID(classroomID)}

	fav := row.favorite()

	assert.Equal(t, classroomID, fav.ClassroomID)
	assert.Nil(t, fav.Classroom)
}
