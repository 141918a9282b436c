package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/notifier"
	notifier_mocks "github.com/shenikar/fire_dispatch_system/internal/notifier/mocks"
	"github.com/shenikar/fire_dispatch_system/internal/service/mocks"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestResponseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestResponseService(t *testing.T) (*responseService, *mocks.MockResponseRepository, *mocks.MockSocietyRepository, *notifier_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	responsesMock := mocks.NewMockResponseRepository(ctrl)
	societiesMock := mocks.NewMockSocietyRepository(ctrl)
	publisherMock := notifier_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewResponseService(responsesMock, societiesMock, publisherMock, logger)
	return service.(*responseService), responsesMock, societiesMock, publisherMock
}

func TestUpdateResponseStatus_Completed_Success(t *testing.T) {
	// Подготовка
	service, responsesMock, societiesMock, publisherMock := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()
	responseID := uuid.New()
	societyID := uuid.New()
	existing := &models.Response{
		ID:        responseID,
		StationID: stationID,
		SocietyID: societyID,
		Status:    models.ResponseStatusResponding,
	}
	society := &models.Society{
		ID:             societyID,
		Name:           "Речной",
		SecretaryEmail: "secretary@example.com",
	}

	// Ожидания
	responsesMock.EXPECT().
		GetByID(ctx, stationID, responseID).
		Return(existing, nil).
		Times(1)

	responsesMock.EXPECT().
		UpdateStatus(ctx, responseID, models.ResponseStatusCompleted).
		Return(nil).
		Times(1)

	// Завершение выезда снимает тревогу общества
	societiesMock.EXPECT().
		CompleteFire(ctx, societyID).
		Return(nil).
		Times(1)

	// Секретарь получает уведомление о смене статуса
	societiesMock.EXPECT().
		GetByID(ctx, societyID).
		Return(society, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, notification notifier.Notification) {
			assert.Equal(t, "secretary@example.com", notification.Recipient)
			assert.Contains(t, notification.Subject, "resolved")
		}).Return(nil).Times(1)

	societiesMock.EXPECT().
		InvalidateFireStatusCache(ctx, societyID).
		Return(nil).
		Times(1)

	// Действие
	response, err := service.UpdateStatus(ctx, stationID, responseID, models.ResponseStatusCompleted)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, models.ResponseStatusCompleted, response.Status)
}

func TestUpdateResponseStatus_InvalidStatus(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestResponseService(t)
	ctx := context.Background()

	// Действие
	response, err := service.UpdateStatus(ctx, uuid.New(), uuid.New(), models.ResponseStatus("cancelled"))

	// Проверки
	require.Error(t, err)
	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateResponseStatus_NotFound(t *testing.T) {
	// Подготовка
	service, responsesMock, _, _ := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()
	responseID := uuid.New()

	// Ожидания
	responsesMock.EXPECT().
		GetByID(ctx, stationID, responseID).
		Return(nil, fmt.Errorf("repo: %w", apperr.ErrNotFound)).
		Times(1)

	// Действие
	response, err := service.UpdateStatus(ctx, stationID, responseID, models.ResponseStatusCompleted)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateResponseStatus_AlreadyCompleted(t *testing.T) {
	// Подготовка
	service, responsesMock, _, _ := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()
	responseID := uuid.New()
	existing := &models.Response{
		ID:        responseID,
		StationID: stationID,
		SocietyID: uuid.New(),
		Status:    models.ResponseStatusCompleted,
	}

	// Ожидания
	// Терминальный статус: дальше только отказ
	responsesMock.EXPECT().
		GetByID(ctx, stationID, responseID).
		Return(existing, nil).
		Times(1)

	// Действие
	response, err := service.UpdateStatus(ctx, stationID, responseID, models.ResponseStatusResponding)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateResponseStatus_PropagationFails(t *testing.T) {
	// Подготовка
	service, responsesMock, societiesMock, publisherMock := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()
	responseID := uuid.New()
	societyID := uuid.New()
	existing := &models.Response{
		ID:        responseID,
		StationID: stationID,
		SocietyID: societyID,
		Status:    models.ResponseStatusResponding,
	}
	propagateError := fmt.Errorf("общество недоступно")

	// Ожидания
	responsesMock.EXPECT().GetByID(ctx, stationID, responseID).Return(existing, nil).Times(1)

	// Запись выезда обновляется и НЕ откатывается
	responsesMock.EXPECT().
		UpdateStatus(ctx, responseID, models.ResponseStatusCompleted).
		Return(nil).
		Times(1)

	// Сбой распространения на общество возвращается вызывающему
	societiesMock.EXPECT().CompleteFire(ctx, societyID).Return(propagateError).Times(1)

	societiesMock.EXPECT().
		GetByID(ctx, societyID).
		Return(&models.Society{ID: societyID, SecretaryEmail: "s@example.com"}, nil).
		Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	societiesMock.EXPECT().InvalidateFireStatusCache(ctx, societyID).Return(nil).Times(1)

	// Действие
	response, err := service.UpdateStatus(ctx, stationID, responseID, models.ResponseStatusCompleted)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, response)
	assert.ErrorContains(t, err, "society status was not")
}

func TestUpdateResponseStatus_NotifyFailureIgnored(t *testing.T) {
	// Подготовка
	service, responsesMock, societiesMock, publisherMock := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()
	responseID := uuid.New()
	societyID := uuid.New()
	existing := &models.Response{
		ID:        responseID,
		StationID: stationID,
		SocietyID: societyID,
		Status:    models.ResponseStatusResponding,
	}

	// Ожидания
	responsesMock.EXPECT().GetByID(ctx, stationID, responseID).Return(existing, nil).Times(1)
	responsesMock.EXPECT().
		UpdateStatus(ctx, responseID, models.ResponseStatusCompleted).
		Return(nil).
		Times(1)
	societiesMock.EXPECT().CompleteFire(ctx, societyID).Return(nil).Times(1)

	// Уведомление секретаря не доставляется, итог не меняется
	societiesMock.EXPECT().
		GetByID(ctx, societyID).
		Return(&models.Society{ID: societyID, SecretaryEmail: "s@example.com"}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("очередь недоступна")).
		Times(1)
	societiesMock.EXPECT().InvalidateFireStatusCache(ctx, societyID).Return(nil).Times(1)

	// Действие
	response, err := service.UpdateStatus(ctx, stationID, responseID, models.ResponseStatusCompleted)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, models.ResponseStatusCompleted, response.Status)
}

func TestListActiveResponses_Success(t *testing.T) {
	// Подготовка
	service, responsesMock, _, _ := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()
	expected := []*models.ActiveResponse{
		{
			Response:    models.Response{ID: uuid.New(), StationID: stationID, Status: models.ResponseStatusResponding},
			SocietyName: "Речной",
		},
	}

	// Ожидания
	responsesMock.EXPECT().ListActive(ctx, stationID).Return(expected, nil).Times(1)

	// Действие
	responses, err := service.ListActive(ctx, stationID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, responses)
}

func TestListActiveResponses_RepoError(t *testing.T) {
	// Подготовка
	service, responsesMock, _, _ := newTestResponseService(t)
	ctx := context.Background()
	stationID := uuid.New()

	// Ожидания
	responsesMock.EXPECT().
		ListActive(ctx, stationID).
		Return(nil, fmt.Errorf("ошибка БД")).
		Times(1)

	// Действие
	responses, err := service.ListActive(ctx, stationID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, responses)
	assert.ErrorContains(t, err, "could not list active responses")
}
