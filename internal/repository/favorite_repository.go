package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	*base.Repository
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{Repository: base.NewRepository(pool)}
}

// ListByUser получает избранное пользователя вместе с аудиторией и зданием, новые первыми.
// Если аудитория удалена, Classroom у записи равен nil.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Favorite, error) {
	query := `
		SELECT f.id, f.user_id, f.classroom_id, f.created_at,
		       c.id, c.building_id, c.room_number, c.floor, c.capacity, c.is_accessible, c.amenities,
		       b.id, b.code, b.name
		FROM favorites f
		LEFT JOIN classrooms c ON c.id = f.classroom_id
		LEFT JOIN buildings b ON b.id = c.building_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*model.Favorite
	for rows.Next() {
		var row favoriteRow

		err := rows.Scan(
			&row.fav.ID,
			&row.fav.UserID,
			&row.favClassroom,
			&row.fav.CreatedAt,
			&row.classroomID,
			&row.buildingRef,
			&row.roomNumber,
			&row.floor,
			&row.capacity,
			&row.accessible,
			&row.amenities,
			&row.buildingID,
			&row.code,
			&row.name,
		)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}

		favorites = append(favorites, row.favorite())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}

// Insert добавляет пару (пользователь, аудитория) в избранное
func (r *FavoriteRepository) Insert(ctx context.Context, userID, classroomID uuid.UUID) error {
	query := `
		INSERT INTO favorites (user_id, classroom_id)
		VALUES ($1, $2)
	`

	if _, err := r.ExecAffected(ctx, query, userID, classroomID); err != nil {
		return wrapDuplicate("insert favorite", err)
	}

	return nil
}

// Delete удаляет пару из избранного; отсутствие записи ошибкой не считается
func (r *FavoriteRepository) Delete(ctx context.Context, userID, classroomID uuid.UUID) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND classroom_id = $2
	`

	if _, err := r.ExecAffected(ctx, query, userID, classroomID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}

// favoriteRow строка ListByUser с колонками обоих LEFT JOIN
type favoriteRow struct {
	fav          model.Favorite
	favClassroom pgtype.UUID
	classroomID  pgtype.UUID
	buildingRef  pgtype.UUID
	roomNumber   pgtype.Text
	floor        pgtype.Text
	capacity     pgtype.Int4
	accessible   pgtype.Bool
	amenities    []string
	buildingID   pgtype.UUID
	code         pgtype.Text
	name         pgtype.Text
}

// favorite собирает запись избранного. Аудитория без здания остаётся в записи с Building == nil,
// удалённая аудитория даёт Classroom == nil
func (row *favoriteRow) favorite() *model.Favorite {
	fav := row.fav
	if row.favClassroom.Valid {
		fav.ClassroomID = uuid.UUID(row.favClassroom.Bytes)
	}

	if !row.classroomID.Valid {
		return &fav
	}

	classroom := &model.Classroom{
		ID:           uuid.UUID(row.classroomID.Bytes),
		BuildingID:   uuid.UUID(row.buildingRef.Bytes),
		RoomNumber:   row.roomNumber.String,
		Capacity:     int(row.capacity.Int32),
		IsAccessible: row.accessible.Bool,
		Amenities:    model.NewAmenitySet(row.amenities...),
	}
	if row.floor.Valid {
		f := row.floor.String
		classroom.Floor = &f
	}
	if row.buildingID.Valid {
		classroom.Building = &model.Building{
			ID:   uuid.UUID(row.buildingID.Bytes),
			Code: row.code.String,
			Name: row.name.String,
		}
	}
	fav.Classroom = classroom

	return &fav
}
