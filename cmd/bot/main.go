package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/beachrooms_bot/internal/app"
	"github.com/Freeeeeet/beachrooms_bot/internal/auth"
	"github.com/Freeeeeet/beachrooms_bot/internal/config"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/state"
	"github.com/Freeeeeet/beachrooms_bot/internal/repository"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	logger.Sugar().Infow("Starting BeachRooms bot",
		"environment", cfg.Environment,
		"production", cfg.IsProduction(),
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("👋 Bot stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	// Репозитории
	classroomRepo := repository.NewClassroomRepository(pool)
	occupancyRepo := repository.NewOccupancyRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)

	// Сервисы
	verifier := auth.NewTokenVerifier(cfg.JWTSecret, nil)
	registry := service.NewClientRegistry(favoriteRepo, sessionRepo, cfg.RequestTimeout, nil, logger)
	authService := service.NewAuthService(sessionRepo, verifier, registry, nil, logger)
	classroomService := service.NewClassroomService(classroomRepo, occupancyRepo, cfg.StatusStaleAfter, nil, logger)

	stateManager := state.NewManager(state.DefaultTTL, nil)

	opts := []bot.Option{
		bot.WithErrorsHandler(func(err error) {
			logger.Error("Telegram API error", zap.Error(err))
		}),
	}
	if !cfg.IsProduction() && cfg.LogLevel == "debug" {
		// Сырые запросы к Telegram API только для локальной отладки
		opts = append(opts, bot.WithDebug())
	}

	b, err := bot.New(cfg.TelegramToken, opts...)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, registry, classroomService, authService, stateManager, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично для работы
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	scheduler := app.NewScheduler(authService, stateManager, cfg.SessionSweepInterval, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Бот может выйти без ошибки, тогда планировщик надо остановить явно
		defer scheduler.Stop()
		return botController.Start(gctx)
	})
	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
