package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/notifier"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=response.go -destination=mocks/mock_response.go -package=mocks

// ResponseService определяет контракт жизненного цикла выезда станции
type ResponseService interface {
	UpdateStatus(ctx context.Context, stationID, responseID uuid.UUID, status models.ResponseStatus) (*models.Response, error)
	ListActive(ctx context.Context, stationID uuid.UUID) ([]*models.ActiveResponse, error)
}

type responseService struct {
	responses ResponseRepository
	societies SocietyRepository
	publisher notifier.Publisher
	logger    *logrus.Logger
}

func NewResponseService(
	responses ResponseRepository,
	societies SocietyRepository,
	publisher notifier.Publisher,
	logger *logrus.Logger,
) ResponseService {
	return &responseService{
		responses: responses,
		societies: societies,
		publisher: publisher,
		logger:    logger,
	}
}

// UpdateStatus меняет статус выезда и распространяет его на общество.
// Статус completed терминален: повторные обновления отклоняются.
func (s *responseService) UpdateStatus(ctx context.Context, stationID, responseID uuid.UUID, status models.ResponseStatus) (*models.Response, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "response",
		"method":      "UpdateStatus",
		"station_id":  stationID,
		"response_id": responseID,
		"status":      status,
	})
	log.Info("Attempting to update response status")

	if !status.Valid() {
		log.Warn("Invalid response status")
		return nil, fmt.Errorf("service: invalid response status %q: %w", status, apperr.ErrValidation)
	}

	response, err := s.responses.GetByID(ctx, stationID, responseID)
	if err != nil {
		log.WithError(err).Warn("Failed to load response")
		return nil, fmt.Errorf("service: could not load response: %w", err)
	}
	if response.Status == models.ResponseStatusCompleted {
		log.Info("Response is already completed")
		return nil, fmt.Errorf("service: response is already completed: %w", apperr.ErrConflict)
	}

	if err := s.responses.UpdateStatus(ctx, responseID, status); err != nil {
		log.WithError(err).Error("Failed to update response status in repository")
		return nil, fmt.Errorf("service: could not update response status: %w", err)
	}
	response.Status = status

	// Запись выезда — источник истины для станции; сбой распространения
	// на общество не откатывает её, но возвращается вызывающему.
	propagateErr := s.propagate(ctx, log, response, stationID, status)

	s.notifySociety(ctx, log, response.SocietyID, status)

	if err := s.societies.InvalidateFireStatusCache(ctx, response.SocietyID); err != nil {
		log.WithError(err).Warn("Failed to invalidate fire status cache")
	}

	if propagateErr != nil {
		return nil, propagateErr
	}

	log.Info("Response status updated successfully")
	return response, nil
}

// ListActive возвращает активные выезды станции
func (s *responseService) ListActive(ctx context.Context, stationID uuid.UUID) ([]*models.ActiveResponse, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "response",
		"method":     "ListActive",
		"station_id": stationID,
	})

	responses, err := s.responses.ListActive(ctx, stationID)
	if err != nil {
		log.WithError(err).Error("Failed to list active responses")
		return nil, fmt.Errorf("service: could not list active responses: %w", err)
	}

	log.WithField("count", len(responses)).Info("Active responses listed successfully")
	return responses, nil
}

// propagate переносит смену статуса выезда на состояние тревоги общества
func (s *responseService) propagate(ctx context.Context, log *logrus.Entry, response *models.Response, stationID uuid.UUID, status models.ResponseStatus) error {
	var err error
	switch status {
	case models.ResponseStatusCompleted:
		// Пожар потушен: тревога снимается, станция остается в истории
		err = s.societies.CompleteFire(ctx, response.SocietyID)
	case models.ResponseStatusResponding:
		err = s.societies.SetRespondingStation(ctx, response.SocietyID, stationID)
	}
	if err != nil {
		log.WithError(err).Error("Failed to propagate response status to society")
		return fmt.Errorf("service: response updated, but society status was not: %w", err)
	}
	return nil
}

// notifySociety уведомляет секретаря общества о смене статуса, best-effort
func (s *responseService) notifySociety(ctx context.Context, log *logrus.Entry, societyID uuid.UUID, status models.ResponseStatus) {
	society, err := s.societies.GetByID(ctx, societyID)
	if err != nil {
		log.WithError(err).Warn("Failed to load society for status notification")
		return
	}

	headline := map[models.ResponseStatus]string{
		models.ResponseStatusResponding: "Fire services are on their way",
		models.ResponseStatusCompleted:  "Fire emergency has been resolved",
	}[status]

	notification := notifier.Notification{
		Recipient: society.SecretaryEmail,
		Subject:   fmt.Sprintf("🚒 Fire Emergency Update: %s", headline),
		Body:      fmt.Sprintf("Status update for the fire emergency at %s. Current status: %s.", society.Name, status),
	}
	if err := s.publisher.Publish(ctx, notification); err != nil {
		log.WithError(err).Warn("Failed to enqueue status notification")
	}
}
