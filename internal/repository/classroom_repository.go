package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const classroomColumns = `
	c.id, c.building_id, c.room_number, c.floor, c.capacity, c.is_accessible, c.amenities,
	b.id, b.code, b.name`

type ClassroomRepository struct {
	*base.Repository
}

func NewClassroomRepository(pool *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{Repository: base.NewRepository(pool)}
}

// List получает все аудитории вместе со зданиями
func (r *ClassroomRepository) List(ctx context.Context) ([]*model.Classroom, error) {
	query := `
		SELECT ` + classroomColumns + `
		FROM classrooms c
		JOIN buildings b ON b.id = c.building_id
		ORDER BY b.code, c.room_number
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	defer rows.Close()

	var classrooms []*model.Classroom
	for rows.Next() {
		classroom, err := scanClassroom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan classroom: %w", err)
		}
		classrooms = append(classrooms, classroom)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classrooms: %w", err)
	}

	return classrooms, nil
}

// GetByID получает аудиторию по ID
func (r *ClassroomRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Classroom, error) {
	query := `
		SELECT ` + classroomColumns + `
		FROM classrooms c
		JOIN buildings b ON b.id = c.building_id
		WHERE c.id = $1
	`

	classroom, err := scanClassroom(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Аудитория не найдена
		}
		return nil, fmt.Errorf("get classroom by id: %w", err)
	}

	return classroom, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClassroom(row rowScanner) (*model.Classroom, error) {
	var (
		classroom model.Classroom
		building  model.Building
		amenities []string
	)

	err := row.Scan(
		&classroom.ID,
		&classroom.BuildingID,
		&classroom.RoomNumber,
		&classroom.Floor,
		&classroom.Capacity,
		&classroom.IsAccessible,
		&amenities,
		&building.ID,
		&building.Code,
		&building.Name,
	)
	if err != nil {
		return nil, err
	}

	classroom.Amenities = model.NewAmenitySet(amenities...)
	classroom.Building = &building
	return &classroom, nil
}
