package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/notifier"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/shenikar/fire_dispatch_system/pkg/hash"
	"github.com/shenikar/fire_dispatch_system/pkg/token"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=station.go -destination=mocks/mock_station.go -package=mocks

// StationService определяет контракт для управления пожарными станциями
type StationService interface {
	Register(ctx context.Context, station *models.FireStation, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*models.FireStation, error)
	AddPersonnel(ctx context.Context, stationID uuid.UUID, person *models.Personnel) error
	GetStats(ctx context.Context, stationID uuid.UUID) (*models.StationStats, error)
}

type stationService struct {
	stations  StationRepository
	publisher notifier.Publisher
	tokens    *token.Manager
	logger    *logrus.Logger
}

func NewStationService(
	stations StationRepository,
	publisher notifier.Publisher,
	tokens *token.Manager,
	logger *logrus.Logger,
) StationService {
	return &stationService{
		stations:  stations,
		publisher: publisher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register регистрирует новую пожарную станцию
func (s *stationService) Register(ctx context.Context, station *models.FireStation, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "station",
		"method":  "Register",
		"email":   station.Email,
	})
	log.Info("Attempting to register a new fire station")

	if _, err := s.stations.GetByEmail(ctx, station.Email); err == nil {
		log.Warn("Fire station already registered with this email")
		return fmt.Errorf("service: fire station already registered with this email: %w", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		log.WithError(err).Error("Failed to check existing fire station")
		return fmt.Errorf("service: could not check existing fire station: %w", err)
	}

	hashed, err := hash.Password(password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	station.PasswordHash = hashed

	if err := s.stations.Create(ctx, station); err != nil {
		log.WithError(err).Error("Failed to create fire station in repository")
		return fmt.Errorf("service: could not create fire station: %w", err)
	}

	log.WithField("station_id", station.ID).Info("Fire station registered successfully")
	return nil
}

// Login проверяет учетные данные и выдает токен
func (s *stationService) Login(ctx context.Context, email, password string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "station",
		"method":  "Login",
		"email":   email,
	})

	station, err := s.stations.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Fire station not found for login")
		return "", fmt.Errorf("service: fire station not found: %w", err)
	}

	if !hash.Compare(station.PasswordHash, password) {
		log.Warn("Invalid credentials")
		return "", fmt.Errorf("service: invalid credentials: %w", apperr.ErrValidation)
	}

	signed, err := s.tokens.Issue(station.ID, token.RoleStation)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.Info("Fire station logged in successfully")
	return signed, nil
}

// GetDetails возвращает станцию со списком персонала
func (s *stationService) GetDetails(ctx context.Context, id uuid.UUID) (*models.FireStation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "station",
		"method":     "GetDetails",
		"station_id": id,
	})

	station, err := s.stations.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get fire station")
		return nil, fmt.Errorf("service: could not get fire station: %w", err)
	}
	return station, nil
}

// AddPersonnel добавляет сотрудника на станцию
func (s *stationService) AddPersonnel(ctx context.Context, stationID uuid.UUID, person *models.Personnel) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "station",
		"method":     "AddPersonnel",
		"station_id": stationID,
		"role":       person.Role,
	})
	log.Info("Attempting to add personnel")

	station, err := s.stations.GetByID(ctx, stationID)
	if err != nil {
		log.WithError(err).Warn("Failed to load fire station")
		return fmt.Errorf("service: could not load fire station: %w", err)
	}

	if err := s.stations.AddPersonnel(ctx, stationID, person); err != nil {
		log.WithError(err).Error("Failed to add personnel in repository")
		return fmt.Errorf("service: could not add personnel: %w", err)
	}

	notification := notifier.Notification{
		Recipient: person.Email,
		Subject:   welcomeSubject,
		Body:      fmt.Sprintf("You have been added as %s at %s.", person.Role, station.StationName),
	}
	if err := s.publisher.Publish(ctx, notification); err != nil {
		log.WithError(err).Warn("Failed to enqueue welcome notification")
	}

	log.WithField("personnel_id", person.ID).Info("Personnel added successfully")
	return nil
}

// GetStats возвращает агрегированную статистику станции
func (s *stationService) GetStats(ctx context.Context, stationID uuid.UUID) (*models.StationStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "station",
		"method":     "GetStats",
		"station_id": stationID,
	})

	stats, err := s.stations.GetStats(ctx, stationID)
	if err != nil {
		log.WithError(err).Error("Failed to get station stats")
		return nil, fmt.Errorf("service: could not get station stats: %w", err)
	}
	return stats, nil
}
