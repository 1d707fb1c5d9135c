package model

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityOccupied  AvailabilityStatus = "occupied"
	AvailabilityUnknown   AvailabilityStatus = "unknown"
)

// ClassroomAvailability вычисляемое представление аудитории со статусом (не хранится в БД)
type ClassroomAvailability struct {
	Classroom  Classroom          `json:"classroom"`
	Status     AvailabilityStatus `json:"status"`
	StatusText string             `json:"status_text"`
}

// OccupancyReport последняя запись внешнего источника о занятости аудитории
type OccupancyReport struct {
	ClassroomID uuid.UUID          `json:"classroom_id"`
	Status      AvailabilityStatus `json:"status"`
	StatusText  string             `json:"status_text"`
	ObservedAt  time.Time          `json:"observed_at"`
}
