package auth

import (
	"sync"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
)

// Listener вызывается при входе и выходе; nil означает выход
type Listener func(user *model.AuthUser)

// Session хранит текущего пользователя одного клиента и уведомляет подписчиков об изменениях
type Session struct {
	mu        sync.RWMutex
	user      *model.AuthUser
	expiresAt time.Time
	nextID    int
	listeners map[int]Listener
}

// NewSession создаёт пустую (неавторизованную) сессию
func NewSession() *Session {
	return &Session{
		listeners: make(map[int]Listener),
	}
}

// CurrentUser возвращает текущего пользователя или nil
func (s *Session) CurrentUser() *model.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsLoggedIn проверяет, выполнен ли вход
func (s *Session) IsLoggedIn() bool {
	return s.CurrentUser() != nil
}

// ExpiresAt возвращает время истечения токена текущего входа
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// SignIn устанавливает пользователя и уведомляет подписчиков
func (s *Session) SignIn(user *model.AuthUser, expiresAt time.Time) {
	s.mu.Lock()
	s.user = user
	s.expiresAt = expiresAt
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, user)
}

// SignOut сбрасывает пользователя и уведомляет подписчиков.
// Повторный выход подписчиков не беспокоит.
func (s *Session) SignOut() {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user = nil
	s.expiresAt = time.Time{}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, nil)
}

// Subscribe подписывает на изменения; возвращает функцию отписки
func (s *Session) Subscribe(listener Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

// notify вызывается без блокировки, чтобы подписчик мог читать сессию
func notify(listeners []Listener, user *model.AuthUser) {
	for _, l := range listeners {
		l(user)
	}
}
