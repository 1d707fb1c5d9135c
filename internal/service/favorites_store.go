package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/auth"
	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavoritesRemote удалённое хранилище избранного
type FavoritesRemote interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Favorite, error)
	Insert(ctx context.Context, userID, classroomID uuid.UUID) error
	Delete(ctx context.Context, userID, classroomID uuid.UUID) error
}

// SessionSource источник текущего пользователя с уведомлениями о входе и выходе
type SessionSource interface {
	CurrentUser() *model.AuthUser
	Subscribe(listener auth.Listener) (unsubscribe func())
}

// FavoritesState снимок состояния хранилища; пустой Error означает отсутствие ошибки
type FavoritesState struct {
	Favorites []model.Favorite
	IsLoading bool
	Error     string
}

// FavoritesStore зеркало избранного текущего пользователя.
// Любая успешная мутация заканчивается полной перезагрузкой списка.
// Результат загрузки применяется, только если более новая загрузка ещё не применена.
type FavoritesStore struct {
	remote  FavoritesRemote
	session SessionSource
	timeout time.Duration
	logger  *zap.Logger

	mu        sync.RWMutex
	favorites []model.Favorite
	inflight  int
	errMsg    string
	issued    uint64 // номер последней начатой загрузки
	applied   uint64 // номер последней применённой загрузки

	unsubscribe func()
}

// NewFavoritesStore создаёт хранилище; timeout <= 0 отключает ограничение времени запроса
func NewFavoritesStore(remote FavoritesRemote, session SessionSource, timeout time.Duration, logger *zap.Logger) *FavoritesStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoritesStore{
		remote:  remote,
		session: session,
		timeout: timeout,
		logger:  logger,
	}
}

// Start подписывается на изменения сессии и выполняет первую загрузку
func (s *FavoritesStore) Start(ctx context.Context) {
	s.mu.Lock()
	if s.unsubscribe == nil {
		s.unsubscribe = s.session.Subscribe(func(*model.AuthUser) {
			s.FetchAll(ctx)
		})
	}
	s.mu.Unlock()

	s.FetchAll(ctx)
}

// Close отписывается от сессии
func (s *FavoritesStore) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// FetchAll заменяет список избранного данными хранилища.
// Ошибка не возвращается, а сохраняется в состоянии; последний успешный список остаётся.
func (s *FavoritesStore) FetchAll(ctx context.Context) {
	user := s.session.CurrentUser()

	s.mu.Lock()
	s.issued++
	ticket := s.issued

	if user == nil {
		// Без пользователя список пуст, сеть не трогаем
		s.favorites = nil
		s.errMsg = ""
		s.applied = ticket
		s.mu.Unlock()
		return
	}

	s.inflight++
	s.mu.Unlock()

	callCtx, cancel := s.withTimeout(ctx)
	rows, err := s.remote.ListByUser(callCtx, user.ID)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if ticket < s.applied {
		s.logger.Debug("Discarding stale favorites fetch",
			zap.Uint64("ticket", ticket),
			zap.Uint64("applied", s.applied))
		return
	}

	if current := s.session.CurrentUser(); current == nil || current.ID != user.ID {
		s.logger.Debug("Discarding favorites fetch for previous user",
			zap.String("user_id", user.ID.String()))
		return
	}

	s.applied = ticket

	if err != nil {
		s.errMsg = remoteMessage(err)
		s.logger.Error("Failed to fetch favorites",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return
	}

	s.favorites = resolvedFavorites(rows)
	s.errMsg = ""

	s.logger.Debug("Favorites fetched",
		zap.String("user_id", user.ID.String()),
		zap.Int("count", len(s.favorites)))
}

// Refetch повторная загрузка по запросу пользователя
func (s *FavoritesStore) Refetch(ctx context.Context) {
	s.FetchAll(ctx)
}

// Add добавляет аудиторию в избранное и перезагружает список
func (s *FavoritesStore) Add(ctx context.Context, classroomID uuid.UUID) error {
	user := s.session.CurrentUser()
	if user == nil {
		return fmt.Errorf("%w to add favorites", ErrUnauthenticated)
	}

	callCtx, cancel := s.withTimeout(ctx)
	err := s.remote.Insert(callCtx, user.ID, classroomID)
	cancel()

	if err != nil {
		s.logger.Error("Failed to add favorite",
			zap.String("user_id", user.ID.String()),
			zap.String("classroom_id", classroomID.String()),
			zap.Error(err))
		return newRemoteError("add favorite", err)
	}

	s.logger.Info("Favorite added",
		zap.String("user_id", user.ID.String()),
		zap.String("classroom_id", classroomID.String()))

	s.FetchAll(ctx)
	return nil
}

// Remove убирает аудиторию из избранного и перезагружает список.
// Если аудитории в избранном не было, это не ошибка.
func (s *FavoritesStore) Remove(ctx context.Context, classroomID uuid.UUID) error {
	user := s.session.CurrentUser()
	if user == nil {
		return fmt.Errorf("%w to remove favorites", ErrUnauthenticated)
	}

	callCtx, cancel := s.withTimeout(ctx)
	err := s.remote.Delete(callCtx, user.ID, classroomID)
	cancel()

	if err != nil {
		s.logger.Error("Failed to remove favorite",
			zap.String("user_id", user.ID.String()),
			zap.String("classroom_id", classroomID.String()),
			zap.Error(err))
		return newRemoteError("remove favorite", err)
	}

	s.logger.Info("Favorite removed",
		zap.String("user_id", user.ID.String()),
		zap.String("classroom_id", classroomID.String()))

	s.FetchAll(ctx)
	return nil
}

// IsFavorite проверяет аудиторию по последнему применённому списку, без сети
func (s *FavoritesStore) IsFavorite(classroomID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fav := range s.favorites {
		if fav.ClassroomID == classroomID {
			return true
		}
	}
	return false
}

// Favorites возвращает копию списка
func (s *FavoritesStore) Favorites() []model.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Favorite(nil), s.favorites...)
}

// IsLoading true, пока идёт хотя бы одна загрузка
func (s *FavoritesStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Error возвращает текст последней ошибки загрузки или пустую строку
func (s *FavoritesStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// State возвращает согласованный снимок состояния
func (s *FavoritesStore) State() FavoritesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FavoritesState{
		Favorites: append([]model.Favorite(nil), s.favorites...),
		IsLoading: s.inflight > 0,
		Error:     s.errMsg,
	}
}

func (s *FavoritesStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// resolvedFavorites отбрасывает записи, аудиторию которых не удалось получить; порядок сохраняется
func resolvedFavorites(rows []*model.Favorite) []model.Favorite {
	result := make([]model.Favorite, 0, len(rows))
	for _, row := range rows {
		if row == nil || row.Classroom == nil {
			continue
		}
		result = append(result, *row)
	}
	return result
}
