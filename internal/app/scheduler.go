package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionExpirer завершает входы с истёкшим токеном
type SessionExpirer interface {
	ExpireSessions(ctx context.Context) (int, error)
}

// DialogPruner забывает брошенные диалоги
type DialogPruner interface {
	Prune() int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	sessions SessionExpirer
	dialogs  DialogPruner
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewScheduler создаёт новый планировщик
func NewScheduler(sessions SessionExpirer, dialogs DialogPruner, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		dialogs:  dialogs,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run выполняет фоновые задачи до отмены контекста или Stop
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))
	s.runSessionSweepTask(ctx)
	return nil
}

// Stop останавливает фоновые задачи; повторный вызов ничего не делает
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
}

// runSessionSweepTask периодически выкидывает сессии с истёкшим токеном
func (s *Scheduler) runSessionSweepTask(ctx context.Context) {
	// Первый запуск сразу при старте
	s.sweepSessions(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepSessions(ctx)
		case <-s.stopChan:
			s.logger.Info("Session sweep task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Session sweep task cancelled")
			return
		}
	}
}

func (s *Scheduler) sweepSessions(ctx context.Context) {
	count, err := s.sessions.ExpireSessions(ctx)
	if err != nil {
		s.logger.Error("Failed to expire sessions", zap.Error(err))
	} else if count > 0 {
		s.logger.Info("Session sweep completed", zap.Int("expired", count))
	}

	if s.dialogs != nil {
		if pruned := s.dialogs.Prune(); pruned > 0 {
			s.logger.Debug("Abandoned dialogs pruned", zap.Int("count", pruned))
		}
	}
}
