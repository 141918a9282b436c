package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/config"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/notifier"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/mock_dispatch.go -package=mocks

// Бюджет времени на компенсацию: откат обязан сработать даже при
// отмененном контексте запроса.
const rollbackTimeout = 5 * time.Second

const emergencySubject = "🚨 FIRE EMERGENCY ALERT"

// DispatchService определяет контракт диспетчеризации пожарной тревоги
type DispatchService interface {
	TriggerFire(ctx context.Context, societyID uuid.UUID) (*models.DispatchResult, error)
	GetFireStatus(ctx context.Context, societyID uuid.UUID) (*models.FireStatus, error)
}

type dispatchService struct {
	societies SocietyRepository
	stations  StationRepository
	responses ResponseRepository
	publisher notifier.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewDispatchService(
	societies SocietyRepository,
	stations StationRepository,
	responses ResponseRepository,
	publisher notifier.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		societies: societies,
		stations:  stations,
		responses: responses,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// TriggerFire проводит тревогу через весь конвейер диспетчеризации:
// захват -> проверка координат -> ближайшая станция -> запись о выезде ->
// рассылка жителям. Любой сбой после захвата компенсируется откатом.
func (s *dispatchService) TriggerFire(ctx context.Context, societyID uuid.UUID) (*models.DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "TriggerFire",
		"society_id": societyID,
	})
	log.Info("Attempting to trigger fire alert")

	// Единственная точка защиты от двойной диспетчеризации: условный UPDATE
	// в хранилище, а не чтение-потом-запись на уровне приложения.
	claimed, err := s.societies.ClaimFire(ctx, societyID)
	if err != nil {
		log.WithError(err).Error("Failed to claim fire alert")
		return nil, fmt.Errorf("service: could not claim fire alert: %w", err)
	}
	if !claimed {
		// UPDATE не затронул строк: тревога уже активна либо общества нет
		if _, getErr := s.societies.GetByID(ctx, societyID); getErr != nil {
			if errors.Is(getErr, apperr.ErrNotFound) {
				log.Warn("Society not found")
				return nil, fmt.Errorf("service: society not found: %w", apperr.ErrNotFound)
			}
			log.WithError(getErr).Error("Failed to load society after empty claim")
			return nil, fmt.Errorf("service: could not load society: %w", getErr)
		}
		log.Info("Fire alert is already active")
		return nil, fmt.Errorf("service: fire alert is already active: %w", apperr.ErrConflict)
	}

	// Перечитываем общество уже под захваченной тревогой
	society, err := s.societies.GetByID(ctx, societyID)
	if err != nil {
		return nil, s.rollback(ctx, log, societyID,
			fmt.Errorf("service: could not load society after claim: %w", err))
	}

	if society.Location == nil {
		return nil, s.rollback(ctx, log, societyID,
			fmt.Errorf("service: society location is not set: %w", apperr.ErrValidation))
	}

	station, err := s.stations.FindNearest(ctx, *society.Location, s.cfg.DispatchRadiusMeters)
	if err != nil {
		return nil, s.rollback(ctx, log, societyID,
			fmt.Errorf("service: could not resolve nearest station: %w", err))
	}
	if station == nil {
		return nil, s.rollback(ctx, log, societyID,
			fmt.Errorf("service: no fire stations available nearby: %w", apperr.ErrNotFound))
	}
	log = log.WithField("station_id", station.ID)

	// Обе записи должны пройти до объявления успеха; откат покрывает
	// сбой любой из них
	if err := s.societies.SetRespondingStation(ctx, societyID, station.ID); err != nil {
		return nil, s.rollback(ctx, log, societyID,
			fmt.Errorf("service: could not set responding station: %w", err))
	}

	response := &models.Response{
		StationID: station.ID,
		SocietyID: societyID,
		Status:    models.ResponseStatusResponding,
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, s.rollback(ctx, log, societyID,
			fmt.Errorf("service: could not create response record: %w", err))
	}

	s.invalidateFireStatus(ctx, log, societyID)

	failures := s.notifyResidents(ctx, log, society)
	if failures > 0 {
		log.WithField("notify_failures", failures).Warn("Dispatch succeeded with partial notification delivery")
	}

	log.WithField("response_id", response.ID).Info("Fire alert dispatched successfully")
	return &models.DispatchResult{
		StationID:      station.ID,
		StationName:    station.StationName,
		ResponseID:     response.ID,
		ResidentsTotal: len(society.Residents),
		NotifyFailures: failures,
	}, nil
}

// GetFireStatus возвращает снимок состояния тревоги общества
func (s *dispatchService) GetFireStatus(ctx context.Context, societyID uuid.UUID) (*models.FireStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "GetFireStatus",
		"society_id": societyID,
	})

	cached, err := s.societies.GetFireStatusFromCache(ctx, societyID)
	if err != nil {
		log.WithError(err).Warn("Failed to read fire status from cache")
	}
	if cached != nil {
		return cached, nil
	}

	status, err := s.societies.GetFireStatus(ctx, societyID)
	if err != nil {
		log.WithError(err).Error("Failed to get fire status from repository")
		return nil, fmt.Errorf("service: could not get fire status: %w", err)
	}

	if err := s.societies.SetFireStatusCache(ctx, societyID, status); err != nil {
		log.WithError(err).Warn("Failed to cache fire status")
	}
	return status, nil
}

// rollback снимает захваченную тревогу и возвращает исходную ошибку.
// Выполняется на контексте без отмены: захват, брошенный из-за таймаута
// запроса, навсегда оставил бы общество помеченным как горящее.
func (s *dispatchService) rollback(ctx context.Context, log *logrus.Entry, societyID uuid.UUID, cause error) error {
	log.WithError(cause).Warn("Dispatch failed after claim, reverting fire status")

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	releaseErr := s.societies.ReleaseFire(rctx, societyID)

	// Кеш сбрасывается в обоих исходах: при несработавшем откате там мог
	// остаться снимок с неактивной тревогой, противоречащий хранилищу.
	s.invalidateFireStatus(rctx, log, societyID)

	if releaseErr != nil {
		log.WithError(releaseErr).WithField("rollback_failed", true).
			Error("Failed to revert fire status, society is left marked active without a responder")
		return fmt.Errorf("service: could not revert fire status after %q: %w", cause, apperr.ErrRollbackFailed)
	}
	return cause
}

// notifyResidents параллельно ставит в очередь экстренные уведомления всем
// жителям. Отказы считаются и логируются, но не влияют на итог диспетчеризации.
func (s *dispatchService) notifyResidents(ctx context.Context, log *logrus.Entry, society *models.Society) int {
	body := fmt.Sprintf(
		"EMERGENCY: Fire detected at %s, %s. Please evacuate immediately. Emergency services have been notified.",
		society.Name, society.Address,
	)

	var failures int32
	var wg sync.WaitGroup
	for _, resident := range society.Residents {
		wg.Add(1)
		go func(resident models.Resident) {
			defer wg.Done()
			notification := notifier.Notification{
				Recipient: resident.Email,
				Subject:   emergencySubject,
				Body:      body,
			}
			if err := s.publisher.Publish(ctx, notification); err != nil {
				log.WithError(err).WithField("recipient", resident.Email).
					Warn("Failed to enqueue emergency notification")
				atomic.AddInt32(&failures, 1)
			}
		}(resident)
	}
	wg.Wait()
	return int(failures)
}

// invalidateFireStatus сбрасывает кеш статуса тревоги, промах не критичен
func (s *dispatchService) invalidateFireStatus(ctx context.Context, log *logrus.Entry, societyID uuid.UUID) {
	if err := s.societies.InvalidateFireStatusCache(ctx, societyID); err != nil {
		log.WithError(err).Warn("Failed to invalidate fire status cache")
	}
}
