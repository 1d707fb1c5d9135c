package model

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ClassroomID uuid.UUID `json:"classroom_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Денормализованные данные аудитории и здания, nil если аудитория удалена
	Classroom *Classroom `json:"classroom"`
}
