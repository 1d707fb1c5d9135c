package service

import (
	"sync"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
)

// RoomSelection общий слот "аудитория, которую сейчас смотрят" между списком и карточкой
type RoomSelection struct {
	mu   sync.RWMutex
	room *model.ClassroomAvailability
}

func NewRoomSelection() *RoomSelection {
	return &RoomSelection{}
}

// SetSelectedRoom заменяет значение; nil очищает слот при закрытии карточки
func (r *RoomSelection) SetSelectedRoom(room *model.ClassroomAvailability) {
	r.mu.Lock()
	r.room = room
	r.mu.Unlock()
}

// SelectedRoom возвращает последнее установленное значение; nil - допустимое пустое состояние
func (r *RoomSelection) SelectedRoom() *model.ClassroomAvailability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.room
}
