package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OccupancyRepository читает данные внешнего источника занятости (таблица room_status)
type OccupancyRepository struct {
	*base.Repository
}

func NewOccupancyRepository(pool *pgxpool.Pool) *OccupancyRepository {
	return &OccupancyRepository{Repository: base.NewRepository(pool)}
}

// Latest получает последние отчёты по всем аудиториям
func (r *OccupancyRepository) Latest(ctx context.Context) (map[uuid.UUID]*model.OccupancyReport, error) {
	query := `
		SELECT classroom_id, status, status_text, observed_at
		FROM room_status
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list room status: %w", err)
	}
	defer rows.Close()

	reports := make(map[uuid.UUID]*model.OccupancyReport)
	for rows.Next() {
		var report model.OccupancyReport
		err := rows.Scan(
			&report.ClassroomID,
			&report.Status,
			&report.StatusText,
			&report.ObservedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room status: %w", err)
		}
		reports[report.ClassroomID] = &report
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room status: %w", err)
	}

	return reports, nil
}

// GetByClassroomID получает отчёт по одной аудитории
func (r *OccupancyRepository) GetByClassroomID(ctx context.Context, classroomID uuid.UUID) (*model.OccupancyReport, error) {
	query := `
		SELECT classroom_id, status, status_text, observed_at
		FROM room_status
		WHERE classroom_id = $1
	`

	var report model.OccupancyReport
	err := r.QueryRow(ctx, query, classroomID).Scan(
		&report.ClassroomID,
		&report.Status,
		&report.StatusText,
		&report.ObservedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room status: %w", err)
	}

	return &report, nil
}
