package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// SocietyRepository определяет контракт для работы с бд обществ
type SocietyRepository interface {
	Create(ctx context.Context, society *models.Society) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Society, error)
	GetByEmail(ctx context.Context, email string) (*models.Society, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, location models.Location) error
	AddResident(ctx context.Context, societyID uuid.UUID, resident *models.Resident) error
	RemoveResident(ctx context.Context, societyID, residentID uuid.UUID) error

	// ClaimFire атомарно переводит fire_is_active из false в true.
	// Возвращает false без ошибки, если тревога уже активна либо общества нет:
	// условный UPDATE не затронул ни одной строки.
	ClaimFire(ctx context.Context, id uuid.UUID) (bool, error)
	// ReleaseFire — компенсация неудавшейся диспетчеризации: снимает тревогу
	// и очищает назначенную станцию.
	ReleaseFire(ctx context.Context, id uuid.UUID) error
	// CompleteFire снимает тревогу, сохраняя станцию в истории.
	CompleteFire(ctx context.Context, id uuid.UUID) error
	SetRespondingStation(ctx context.Context, societyID, stationID uuid.UUID) error
	GetFireStatus(ctx context.Context, id uuid.UUID) (*models.FireStatus, error)

	GetFireStatusFromCache(ctx context.Context, id uuid.UUID) (*models.FireStatus, error)
	SetFireStatusCache(ctx context.Context, id uuid.UUID, status *models.FireStatus) error
	InvalidateFireStatusCache(ctx context.Context, id uuid.UUID) error
}

// StationRepository определяет контракт для работы с бд пожарных станций
type StationRepository interface {
	Create(ctx context.Context, station *models.FireStation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FireStation, error)
	GetByEmail(ctx context.Context, email string) (*models.FireStation, error)
	// FindNearest возвращает ближайшую станцию в радиусе radiusMeters
	// или nil, если такой нет. Чтение без побочных эффектов.
	FindNearest(ctx context.Context, location models.Location, radiusMeters float64) (*models.FireStation, error)
	AddPersonnel(ctx context.Context, stationID uuid.UUID, person *models.Personnel) error
	GetStats(ctx context.Context, stationID uuid.UUID) (*models.StationStats, error)
}

// ResponseRepository определяет контракт для работы с записями о выездах
type ResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	GetByID(ctx context.Context, stationID, responseID uuid.UUID) (*models.Response, error)
	UpdateStatus(ctx context.Context, responseID uuid.UUID, status models.ResponseStatus) error
	ListActive(ctx context.Context, stationID uuid.UUID) ([]*models.ActiveResponse, error)
}
