package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockFavoritesRemote struct {
	mock.Mock
}

func (m *mockFavoritesRemote) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Favorite), args.Error(1)
}

func (m *mockFavoritesRemote) Insert(ctx context.Context, userID, classroomID uuid.UUID) error {
	args := m.Called(ctx, userID, classroomID)
	return args.Error(0)
}

func (m *mockFavoritesRemote) Delete(ctx context.Context, userID, classroomID uuid.UUID) error {
	args := m.Called(ctx, userID, classroomID)
	return args.Error(0)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) GetByTelegramID(ctx context.Context, telegramID int64) (*model.BotSession, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BotSession), args.Error(1)
}

func (m *mockSessionStore) Save(ctx context.Context, session *model.BotSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionStore) Delete(ctx context.Context, telegramID int64) error {
	args := m.Called(ctx, telegramID)
	return args.Error(0)
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context, now time.Time) ([]int64, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockTokenVerifier struct {
	mock.Mock
}

func (m *mockTokenVerifier) Verify(token string) (*model.AuthUser, time.Time, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, time.Time{}, args.Error(2)
	}
	return args.Get(0).(*model.AuthUser), args.Get(1).(time.Time), args.Error(2)
}

type mockClassroomRepository struct {
	mock.Mock
}

func (m *mockClassroomRepository) List(ctx context.Context) ([]*model.Classroom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Classroom), args.Error(1)
}

func (m *mockClassroomRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Classroom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Classroom), args.Error(1)
}

type mockOccupancyRepository struct {
	mock.Mock
}

func (m *mockOccupancyRepository) Latest(ctx context.Context) (map[uuid.UUID]*model.OccupancyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*model.OccupancyReport), args.Error(1)
}

func (m *mockOccupancyRepository) GetByClassroomID(ctx context.Context, classroomID uuid.UUID) (*model.OccupancyReport, error) {
	args := m.Called(ctx, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OccupancyReport), args.Error(1)
}

// fixtures

func newClassroom(code, number string) *model.Classroom {
	buildingID := uuid.New()
	return &model.Classroom{
		ID:         uuid.New(),
		BuildingID: buildingID,
		RoomNumber: number,
		Capacity:   40,
		Amenities:  model.NewAmenitySet("projector"),
		Building:   &model.Building{ID: buildingID, Code: code, Name: code + " Hall"},
	}
}

func newFavorite(userID uuid.UUID, classroom *model.Classroom, createdAt time.Time) *model.Favorite {
	fav := &model.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: createdAt,
		Classroom: classroom,
	}
	if classroom != nil {
		fav.ClassroomID = classroom.ID
	} else {
		fav.ClassroomID = uuid.New()
	}
	return fav
}
