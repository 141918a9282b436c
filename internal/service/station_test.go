package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/notifier"
	notifier_mocks "github.com/shenikar/fire_dispatch_system/internal/notifier/mocks"
	"github.com/shenikar/fire_dispatch_system/internal/service/mocks"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/shenikar/fire_dispatch_system/pkg/hash"
	"github.com/shenikar/fire_dispatch_system/pkg/token"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestStationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestStationService(t *testing.T) (*stationService, *mocks.MockStationRepository, *notifier_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	stationsMock := mocks.NewMockStationRepository(ctrl)
	publisherMock := notifier_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	tokens := token.NewManager("test-secret", time.Hour)

	service := NewStationService(stationsMock, publisherMock, tokens, logger)
	return service.(*stationService), stationsMock, publisherMock
}

func TestRegisterStation_Success(t *testing.T) {
	// Подготовка
	service, stationsMock, _ := newTestStationService(t)
	ctx := context.Background()
	station := &models.FireStation{
		StationName: "Станция №3",
		Email:       "station3@example.com",
	}

	// Ожидания
	stationsMock.EXPECT().
		GetByEmail(ctx, station.Email).
		Return(nil, fmt.Errorf("repo: %w", apperr.ErrNotFound)).
		Times(1)

	stationsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *models.FireStation) error {
			assert.NotEmpty(t, s.PasswordHash)
			s.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := service.Register(ctx, station, "secret-password")

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, station.ID)
}

func TestRegisterStation_EmailTaken(t *testing.T) {
	// Подготовка
	service, stationsMock, _ := newTestStationService(t)
	ctx := context.Background()
	station := &models.FireStation{Email: "taken@example.com"}

	// Ожидания
	stationsMock.EXPECT().
		GetByEmail(ctx, station.Email).
		Return(&models.FireStation{ID: uuid.New()}, nil).
		Times(1)

	// Действие
	err := service.Register(ctx, station, "secret-password")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestLoginStation_Success(t *testing.T) {
	// Подготовка
	service, stationsMock, _ := newTestStationService(t)
	ctx := context.Background()
	stationID := uuid.New()
	hashed, err := hash.Password("secret-password")
	require.NoError(t, err)

	// Ожидания
	stationsMock.EXPECT().
		GetByEmail(ctx, "station3@example.com").
		Return(&models.FireStation{ID: stationID, PasswordHash: hashed}, nil).
		Times(1)

	// Действие
	signed, err := service.Login(ctx, "station3@example.com", "secret-password")

	// Проверки
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subjectID, role, err := service.tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, stationID, subjectID)
	assert.Equal(t, token.RoleStation, role)
}

func TestAddPersonnel_Success(t *testing.T) {
	// Подготовка
	service, stationsMock, publisherMock := newTestStationService(t)
	ctx := context.Background()
	stationID := uuid.New()
	person := &models.Personnel{
		Name:  "Петр Петров",
		Email: "petr@example.com",
		Role:  "firefighter",
	}

	// Ожидания
	stationsMock.EXPECT().
		GetByID(ctx, stationID).
		Return(&models.FireStation{ID: stationID, StationName: "Станция №3"}, nil).
		Times(1)

	stationsMock.EXPECT().
		AddPersonnel(ctx, stationID, person).
		DoAndReturn(func(ctx context.Context, stationID uuid.UUID, p *models.Personnel) error {
			p.ID = uuid.New()
			return nil
		}).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, notification notifier.Notification) {
			assert.Equal(t, person.Email, notification.Recipient)
		}).Return(nil).Times(1)

	// Действие
	err := service.AddPersonnel(ctx, stationID, person)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, person.ID)
}

func TestAddPersonnel_StationNotFound(t *testing.T) {
	// Подготовка
	service, stationsMock, _ := newTestStationService(t)
	ctx := context.Background()
	stationID := uuid.New()

	// Ожидания
	stationsMock.EXPECT().
		GetByID(ctx, stationID).
		Return(nil, fmt.Errorf("repo: %w", apperr.ErrNotFound)).
		Times(1)

	// Действие
	err := service.AddPersonnel(ctx, stationID, &models.Personnel{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetStationStats_Success(t *testing.T) {
	// Подготовка
	service, stationsMock, _ := newTestStationService(t)
	ctx := context.Background()
	stationID := uuid.New()
	expected := &models.StationStats{
		TotalResponses:     10,
		ResolvedResponses:  8,
		PersonnelCount:     5,
		AvgResponseSeconds: 420.5,
	}

	// Ожидания
	stationsMock.EXPECT().GetStats(ctx, stationID).Return(expected, nil).Times(1)

	// Действие
	stats, err := service.GetStats(ctx, stationID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	assert.Equal(t, 420.5, stats.AvgResponseSeconds)
}
