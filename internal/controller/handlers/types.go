package handlers

import (
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/controller/state"
	"github.com/Freeeeeet/beachrooms_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	registry     *service.ClientRegistry
	classrooms   *service.ClassroomService
	authService  *service.AuthService
	stateManager *state.Manager
	now          func() time.Time
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	registry *service.ClientRegistry,
	classrooms *service.ClassroomService,
	authService *service.AuthService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		registry:     registry,
		classrooms:   classrooms,
		authService:  authService,
		stateManager: stateManager,
		now:          time.Now,
		logger:       logger,
	}
}
