package state

import (
	"sync"
	"time"
)

// DefaultTTL время жизни брошенного диалога
const DefaultTTL = 15 * time.Minute

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
	ttl    time.Duration
	now    func() time.Time
}

// NewManager создаёт новый менеджер состояний. ttl <= 0 отключает истечение диалогов
func NewManager(ttl time.Duration, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		states: make(map[int64]*UserData),
		ttl:    ttl,
		now:    now,
	}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, ok := sm.live(telegramID); ok {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		// Если состояние None, удаляем запись
		delete(sm.states, telegramID)
		return
	}

	userData := sm.entry(telegramID)
	userData.State = state
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, ok := sm.live(telegramID); ok {
		value, found := userData.Data[key]
		return value, found
	}
	return nil, false
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).Data[key] = value
}

// ClearState очищает состояние и данные пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

// Prune удаляет истёкшие диалоги и возвращает их количество
func (sm *Manager) Prune() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	pruned := 0
	for telegramID, userData := range sm.states {
		if sm.expired(userData) {
			delete(sm.states, telegramID)
			pruned++
		}
	}
	return pruned
}

// entry возвращает запись пользователя, создавая её; вызывается под записью
func (sm *Manager) entry(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists || sm.expired(userData) {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		sm.states[telegramID] = userData
	}
	userData.UpdatedAt = sm.now()
	return userData
}

func (sm *Manager) live(telegramID int64) (*UserData, bool) {
	userData, exists := sm.states[telegramID]
	if !exists || sm.expired(userData) {
		return nil, false
	}
	return userData, true
}

func (sm *Manager) expired(userData *UserData) bool {
	return sm.ttl > 0 && sm.now().Sub(userData.UpdatedAt) > sm.ttl
}
