package service

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/auth"
	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"go.uber.org/zap"
)

// SessionLoader читает сохранённый вход Telegram-пользователя
type SessionLoader interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.BotSession, error)
}

// Client набор состояния одного Telegram-пользователя: сессия, избранное и выбранная аудитория
type Client struct {
	TelegramID int64
	Session    *auth.Session
	Favorites  *FavoritesStore
	Selection  *RoomSelection
}

// ClientRegistry создаёт клиентов по первому обращению и восстанавливает сохранённый вход
type ClientRegistry struct {
	favorites FavoritesRemote
	sessions  SessionLoader
	timeout   time.Duration
	now       func() time.Time
	logger    *zap.Logger

	mu      sync.Mutex
	clients map[int64]*Client
}

func NewClientRegistry(
	favorites FavoritesRemote,
	sessions SessionLoader,
	timeout time.Duration,
	now func() time.Time,
	logger *zap.Logger,
) *ClientRegistry {
	if now == nil {
		now = time.Now
	}
	return &ClientRegistry{
		favorites: favorites,
		sessions:  sessions,
		timeout:   timeout,
		now:       now,
		logger:    logger,
		clients:   make(map[int64]*Client),
	}
}

// Get возвращает клиента Telegram-пользователя, создавая его при первом обращении
func (r *ClientRegistry) Get(ctx context.Context, telegramID int64) *Client {
	r.mu.Lock()
	if client, ok := r.clients[telegramID]; ok {
		r.mu.Unlock()
		return client
	}
	r.mu.Unlock()

	client := r.newClient(ctx, telegramID)

	r.mu.Lock()
	if existing, ok := r.clients[telegramID]; ok {
		// Параллельный запрос успел создать клиента раньше
		r.mu.Unlock()
		client.Favorites.Close()
		return existing
	}
	r.clients[telegramID] = client
	r.mu.Unlock()

	return client
}

// Lookup возвращает клиента, только если он уже создан
func (r *ClientRegistry) Lookup(telegramID int64) (*Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[telegramID]
	return client, ok
}

// Remove закрывает клиента и забывает его
func (r *ClientRegistry) Remove(telegramID int64) {
	r.mu.Lock()
	client, ok := r.clients[telegramID]
	delete(r.clients, telegramID)
	r.mu.Unlock()

	if ok {
		client.Favorites.Close()
		client.Selection.SetSelectedRoom(nil)
	}
}

// Len количество активных клиентов
func (r *ClientRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *ClientRegistry) newClient(ctx context.Context, telegramID int64) *Client {
	session := auth.NewSession()
	r.restore(ctx, telegramID, session)

	client := &Client{
		TelegramID: telegramID,
		Session:    session,
		Favorites:  NewFavoritesStore(r.favorites, session, r.timeout, r.logger.With(zap.Int64("telegram_id", telegramID))),
		Selection:  NewRoomSelection(),
	}
	client.Favorites.Start(context.WithoutCancel(ctx))

	return client
}

// restore поднимает сохранённый вход, если он ещё не истёк
func (r *ClientRegistry) restore(ctx context.Context, telegramID int64, session *auth.Session) {
	if r.sessions == nil {
		return
	}

	saved, err := r.sessions.GetByTelegramID(ctx, telegramID)
	if err != nil {
		r.logger.Error("Failed to restore session",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return
	}
	if saved == nil || !saved.ExpiresAt.After(r.now()) {
		return
	}

	session.SignIn(saved.User(), saved.ExpiresAt)
	r.logger.Info("Session restored",
		zap.Int64("telegram_id", telegramID),
		zap.String("user_id", saved.UserID.String()))
}
