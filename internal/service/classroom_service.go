package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/availability"
	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClassroomRepository interface {
	List(ctx context.Context) ([]*model.Classroom, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Classroom, error)
}

type OccupancyRepository interface {
	Latest(ctx context.Context) (map[uuid.UUID]*model.OccupancyReport, error)
	GetByClassroomID(ctx context.Context, classroomID uuid.UUID) (*model.OccupancyReport, error)
}

// ClassroomService каталог аудиторий со статусом занятости
type ClassroomService struct {
	classrooms ClassroomRepository
	occupancy  OccupancyRepository
	staleAfter time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewClassroomService(
	classrooms ClassroomRepository,
	occupancy OccupancyRepository,
	staleAfter time.Duration,
	now func() time.Time,
	logger *zap.Logger,
) *ClassroomService {
	if now == nil {
		now = time.Now
	}
	return &ClassroomService{
		classrooms: classrooms,
		occupancy:  occupancy,
		staleAfter: staleAfter,
		now:        now,
		logger:     logger,
	}
}

// ListRooms возвращает все аудитории с вычисленным статусом
func (s *ClassroomService) ListRooms(ctx context.Context) ([]model.ClassroomAvailability, error) {
	classrooms, err := s.classrooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}

	reports, err := s.occupancy.Latest(ctx)
	if err != nil {
		// Без данных о занятости список всё равно показываем, статус будет unknown
		s.logger.Warn("Failed to load room status", zap.Error(err))
		reports = nil
	}

	return availability.EvaluateAll(classrooms, reports, s.now(), s.staleAfter), nil
}

// ListAvailableRooms возвращает только свободные аудитории и общее число аудиторий
func (s *ClassroomService) ListAvailableRooms(ctx context.Context) ([]model.ClassroomAvailability, int, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, 0, err
	}

	available := make([]model.ClassroomAvailability, 0, len(rooms))
	for _, room := range rooms {
		if room.Status == model.AvailabilityAvailable {
			available = append(available, room)
		}
	}
	return available, len(rooms), nil
}

// GetRoom возвращает одну аудиторию со статусом
func (s *ClassroomService) GetRoom(ctx context.Context, id uuid.UUID) (*model.ClassroomAvailability, error) {
	classroom, err := s.classrooms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get classroom: %w", err)
	}
	if classroom == nil {
		return nil, ErrClassroomNotFound
	}

	report, err := s.occupancy.GetByClassroomID(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to load room status",
			zap.String("classroom_id", id.String()),
			zap.Error(err))
		report = nil
	}

	room := availability.Evaluate(*classroom, report, s.now(), s.staleAfter)
	return &room, nil
}
