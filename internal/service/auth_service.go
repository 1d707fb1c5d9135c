package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"go.uber.org/zap"
)

// SessionStore хранилище входов Telegram-пользователей
type SessionStore interface {
	SessionLoader
	Save(ctx context.Context, session *model.BotSession) error
	Delete(ctx context.Context, telegramID int64) error
	DeleteExpired(ctx context.Context, now time.Time) ([]int64, error)
}

// TokenVerifier проверяет access token сервиса аутентификации
type TokenVerifier interface {
	Verify(token string) (*model.AuthUser, time.Time, error)
}

type AuthService struct {
	sessions SessionStore
	verifier TokenVerifier
	registry *ClientRegistry
	now      func() time.Time
	logger   *zap.Logger
}

func NewAuthService(
	sessions SessionStore,
	verifier TokenVerifier,
	registry *ClientRegistry,
	now func() time.Time,
	logger *zap.Logger,
) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		sessions: sessions,
		verifier: verifier,
		registry: registry,
		now:      now,
		logger:   logger,
	}
}

// SignInWithToken проверяет токен, сохраняет вход и обновляет живую сессию клиента
func (s *AuthService) SignInWithToken(ctx context.Context, telegramID int64, token string) (*model.AuthUser, error) {
	user, expiresAt, err := s.verifier.Verify(token)
	if err != nil {
		s.logger.Warn("Token rejected",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return nil, err
	}

	err = s.sessions.Save(ctx, &model.BotSession{
		TelegramID: telegramID,
		UserID:     user.ID,
		Email:      user.Email,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	client := s.registry.Get(ctx, telegramID)
	client.Session.SignIn(user, expiresAt)

	s.logger.Info("User signed in",
		zap.Int64("telegram_id", telegramID),
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt))

	return user, nil
}

// SignOut удаляет сохранённый вход и очищает состояние клиента
func (s *AuthService) SignOut(ctx context.Context, telegramID int64) error {
	if err := s.sessions.Delete(ctx, telegramID); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	s.dropClient(telegramID)

	s.logger.Info("User signed out", zap.Int64("telegram_id", telegramID))
	return nil
}

// CurrentUser возвращает пользователя Telegram-чата или nil
func (s *AuthService) CurrentUser(ctx context.Context, telegramID int64) *model.AuthUser {
	return s.registry.Get(ctx, telegramID).Session.CurrentUser()
}

// ExpireSessions завершает входы с истёкшим токеном
func (s *AuthService) ExpireSessions(ctx context.Context) (int, error) {
	now := s.now()

	expired, err := s.sessions.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}

	for _, telegramID := range expired {
		s.dropClient(telegramID)
	}

	if len(expired) > 0 {
		s.logger.Info("Expired sessions signed out", zap.Int("count", len(expired)))
	}

	return len(expired), nil
}

// dropClient завершает живую сессию клиента и убирает его из реестра.
// Подписчики сессии получают выход до того, как хранилище избранного отпишется
func (s *AuthService) dropClient(telegramID int64) {
	client, ok := s.registry.Lookup(telegramID)
	if !ok {
		return
	}
	client.Session.SignOut()
	s.registry.Remove(telegramID)
}
