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

//go:generate mockgen -source=society.go -destination=mocks/mock_society.go -package=mocks

const welcomeSubject = "Welcome to Fire Control System"

// SocietyService определяет контракт для управления обществами
type SocietyService interface {
	Register(ctx context.Context, society *models.Society, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*models.Society, error)
	AddResident(ctx context.Context, societyID uuid.UUID, resident *models.Resident) error
	RemoveResident(ctx context.Context, societyID, residentID uuid.UUID) error
	UpdateLocation(ctx context.Context, id uuid.UUID, location models.Location) error
}

type societyService struct {
	societies SocietyRepository
	publisher notifier.Publisher
	tokens    *token.Manager
	logger    *logrus.Logger
}

func NewSocietyService(
	societies SocietyRepository,
	publisher notifier.Publisher,
	tokens *token.Manager,
	logger *logrus.Logger,
) SocietyService {
	return &societyService{
		societies: societies,
		publisher: publisher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register регистрирует новое общество
func (s *societyService) Register(ctx context.Context, society *models.Society, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "society",
		"method":  "Register",
		"email":   society.SecretaryEmail,
	})
	log.Info("Attempting to register a new society")

	if _, err := s.societies.GetByEmail(ctx, society.SecretaryEmail); err == nil {
		log.Warn("Society already registered with this email")
		return fmt.Errorf("service: society already registered with this email: %w", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		log.WithError(err).Error("Failed to check existing society")
		return fmt.Errorf("service: could not check existing society: %w", err)
	}

	hashed, err := hash.Password(password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	society.PasswordHash = hashed

	if err := s.societies.Create(ctx, society); err != nil {
		log.WithError(err).Error("Failed to create society in repository")
		return fmt.Errorf("service: could not create society: %w", err)
	}

	s.sendWelcome(ctx, log, society.SecretaryEmail, fmt.Sprintf(
		"Your society %s has been successfully registered. You can now login and manage your society's fire safety.",
		society.Name,
	))

	log.WithField("society_id", society.ID).Info("Society registered successfully")
	return nil
}

// Login проверяет учетные данные и выдает токен
func (s *societyService) Login(ctx context.Context, email, password string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "society",
		"method":  "Login",
		"email":   email,
	})

	society, err := s.societies.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Society not found for login")
		return "", fmt.Errorf("service: society not found: %w", err)
	}

	if !hash.Compare(society.PasswordHash, password) {
		log.Warn("Invalid credentials")
		return "", fmt.Errorf("service: invalid credentials: %w", apperr.ErrValidation)
	}

	signed, err := s.tokens.Issue(society.ID, token.RoleSociety)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.Info("Society logged in successfully")
	return signed, nil
}

// GetDetails возвращает общество со списком жителей
func (s *societyService) GetDetails(ctx context.Context, id uuid.UUID) (*models.Society, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "society",
		"method":     "GetDetails",
		"society_id": id,
	})

	society, err := s.societies.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get society")
		return nil, fmt.Errorf("service: could not get society: %w", err)
	}
	return society, nil
}

// AddResident добавляет жителя в общество.
// Номер квартиры уникален в пределах общества.
func (s *societyService) AddResident(ctx context.Context, societyID uuid.UUID, resident *models.Resident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "society",
		"method":      "AddResident",
		"society_id":  societyID,
		"flat_number": resident.FlatNumber,
	})
	log.Info("Attempting to add a resident")

	society, err := s.societies.GetByID(ctx, societyID)
	if err != nil {
		log.WithError(err).Warn("Failed to load society")
		return fmt.Errorf("service: could not load society: %w", err)
	}

	if err := s.societies.AddResident(ctx, societyID, resident); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			log.Warn("Flat number already registered")
			return fmt.Errorf("service: flat number already registered: %w", apperr.ErrConflict)
		}
		log.WithError(err).Error("Failed to add resident in repository")
		return fmt.Errorf("service: could not add resident: %w", err)
	}

	s.sendWelcome(ctx, log, resident.Email, fmt.Sprintf(
		"You have been added as a resident of %s. You will receive emergency notifications at this email address.",
		society.Name,
	))

	log.WithField("resident_id", resident.ID).Info("Resident added successfully")
	return nil
}

// RemoveResident удаляет жителя из общества
func (s *societyService) RemoveResident(ctx context.Context, societyID, residentID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "society",
		"method":      "RemoveResident",
		"society_id":  societyID,
		"resident_id": residentID,
	})

	if err := s.societies.RemoveResident(ctx, societyID, residentID); err != nil {
		log.WithError(err).Warn("Failed to remove resident")
		return fmt.Errorf("service: could not remove resident: %w", err)
	}

	log.Info("Resident removed successfully")
	return nil
}

// UpdateLocation обновляет координаты общества
func (s *societyService) UpdateLocation(ctx context.Context, id uuid.UUID, location models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "society",
		"method":     "UpdateLocation",
		"society_id": id,
	})

	if err := s.societies.UpdateLocation(ctx, id, location); err != nil {
		log.WithError(err).Error("Failed to update society location")
		return fmt.Errorf("service: could not update location: %w", err)
	}

	log.Info("Society location updated successfully")
	return nil
}

// sendWelcome ставит в очередь приветственное письмо, best-effort
func (s *societyService) sendWelcome(ctx context.Context, log *logrus.Entry, recipient, body string) {
	notification := notifier.Notification{
		Recipient: recipient,
		Subject:   welcomeSubject,
		Body:      body,
	}
	if err := s.publisher.Publish(ctx, notification); err != nil {
		log.WithError(err).Warn("Failed to enqueue welcome notification")
	}
}
