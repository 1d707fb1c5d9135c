package model

import "github.com/google/uuid"

type Building struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"` // короткий код, например "VEC"
	Name string    `json:"name"`
}
