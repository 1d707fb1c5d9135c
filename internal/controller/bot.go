package controller

import (
	"context"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/handlers"
	"github.com/Freeeeeet/beachrooms_bot/internal/controller/state"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	registry *service.ClientRegistry,
	classrooms *service.ClassroomService,
	authService *service.AuthService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *BotController {
	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		registry,
		classrooms,
		authService,
		stateManager,
		logger,
	)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(
		registry,
		classrooms,
		authService,
		stateManager,
		logger,
		cmdHandlers.HandleSignIn,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/rooms", bot.MatchTypeExact, c.handlers.HandleRooms)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/available", bot.MatchTypeExact, c.handlers.HandleAvailable)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/saved", bot.MatchTypeExact, c.handlers.HandleSaved)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/signin", bot.MatchTypeExact, c.handlers.HandleSignIn)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/signout", bot.MatchTypeExact, c.handlers.HandleSignOut)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🏖 Main menu"},
		{Command: "rooms", Description: "🏫 All rooms with live status"},
		{Command: "available", Description: "🟢 Rooms open now"},
		{Command: "saved", Description: "⭐ Saved rooms"},
		{Command: "signin", Description: "🔐 Sign in"},
		{Command: "signout", Description: "🚪 Sign out"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены контекста
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	c.logger.Info("Bot stopped")
	return nil
}
