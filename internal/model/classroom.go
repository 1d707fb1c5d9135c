package model

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Classroom struct {
	ID           uuid.UUID  `json:"id"`
	BuildingID   uuid.UUID  `json:"building_id"`
	RoomNumber   string     `json:"room_number"`
	Floor        *string    `json:"floor"` // указатель - этаж может быть не указан
	Capacity     int        `json:"capacity"`
	IsAccessible bool       `json:"is_accessible"`
	Amenities    AmenitySet `json:"amenities"`

	// Присоединяется из таблицы buildings (не из classrooms)
	Building *Building `json:"building,omitempty"`
}

// DisplayName возвращает имя аудитории в формате "VEC 330"
func (c *Classroom) DisplayName() string {
	if c.Building == nil || c.Building.Code == "" {
		return c.RoomNumber
	}
	return c.Building.Code + " " + c.RoomNumber
}

// AmenitySet множество тегов оснащения без повторов
type AmenitySet map[string]struct{}

// NewAmenitySet нормализует теги и убирает дубликаты
func NewAmenitySet(tags ...string) AmenitySet {
	set := make(AmenitySet, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// Has проверяет наличие тега
func (s AmenitySet) Has(tag string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// Tags возвращает отсортированную копию тегов
func (s AmenitySet) Tags() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
