// Package availability собирает ClassroomAvailability из аудитории и отчёта внешнего источника занятости.
// Расписание занятий здесь не вычисляется: статус приходит готовым.
package availability

import (
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/google/uuid"
)

const (
	noDataText = "No live status for this room"
	staleText  = "Status is out of date"
)

// Evaluate чистая функция: без отчёта или с устаревшим отчётом статус неизвестен.
// staleAfter <= 0 отключает проверку устаревания.
func Evaluate(classroom model.Classroom, report *model.OccupancyReport, now time.Time, staleAfter time.Duration) model.ClassroomAvailability {
	result := model.ClassroomAvailability{
		Classroom:  classroom,
		Status:     model.AvailabilityUnknown,
		StatusText: noDataText,
	}

	if report == nil || report.ClassroomID != classroom.ID {
		return result
	}

	if staleAfter > 0 && now.Sub(report.ObservedAt) > staleAfter {
		result.StatusText = staleText
		return result
	}

	switch report.Status {
	case model.AvailabilityAvailable, model.AvailabilityOccupied:
		result.Status = report.Status
	default:
		result.Status = model.AvailabilityUnknown
	}

	result.StatusText = report.StatusText
	if result.StatusText == "" {
		result.StatusText = defaultText(result.Status)
	}

	return result
}

// EvaluateAll применяет Evaluate ко всем аудиториям, сохраняя порядок
func EvaluateAll(classrooms []*model.Classroom, reports map[uuid.UUID]*model.OccupancyReport, now time.Time, staleAfter time.Duration) []model.ClassroomAvailability {
	result := make([]model.ClassroomAvailability, 0, len(classrooms))
	for _, c := range classrooms {
		if c == nil {
			continue
		}
		result = append(result, Evaluate(*c, reports[c.ID], now, staleAfter))
	}
	return result
}

// CountAvailable считает свободные аудитории
func CountAvailable(rooms []model.ClassroomAvailability) int {
	n := 0
	for _, r := range rooms {
		if r.Status == model.AvailabilityAvailable {
			n++
		}
	}
	return n
}

func defaultText(status model.AvailabilityStatus) string {
	switch status {
	case model.AvailabilityAvailable:
		return "Open now"
	case model.AvailabilityOccupied:
		return "In use"
	default:
		return noDataText
	}
}
