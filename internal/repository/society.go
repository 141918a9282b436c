package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/service"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
)

const fireStatusCacheTTL = 5 * time.Minute

type SocietyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSocietyRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SocietyRepository {
	return &SocietyRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об обществе в бд
func (r *SocietyRepository) Create(ctx context.Context, society *models.Society) error {
	query := `
		INSERT INTO societies (name, address, area, city, secretary_name, secretary_email, secretary_phone, password_hash, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			CASE WHEN $9::float8 IS NULL THEN NULL
			     ELSE ST_SetSRID(ST_MakePoint($9, $10), 4326)::geography END)
		RETURNING id, created_at, updated_at;
	`
	lon, lat := locationArgs(society.Location)
	err := r.db.QueryRow(ctx, query,
		society.Name,
		society.Address,
		society.Area,
		society.City,
		society.SecretaryName,
		society.SecretaryEmail,
		society.SecretaryPhone,
		society.PasswordHash,
		lon,
		lat,
	).Scan(&society.ID, &society.CreatedAt, &society.UpdatedAt)
	if err != nil {
		return apperr.FromStore("create society", err)
	}
	return nil
}

// GetByID возвращает общество с жителями и состоянием тревоги
func (r *SocietyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Society, error) {
	society := &models.Society{}
	query := `
		SELECT
			s.id,
			s.name,
			s.address,
			s.area,
			s.city,
			s.secretary_name,
			s.secretary_email,
			s.secretary_phone,
			s.password_hash,
			ST_Y(s.location::geometry) as latitude,
			ST_X(s.location::geometry) as longitude,
			s.fire_is_active,
			s.fire_activated_at,
			s.fire_responding_station,
			COALESCE(f.station_name, '') as station_name,
			s.created_at,
			s.updated_at
		FROM societies s
		LEFT JOIN fire_stations f ON f.id = s.fire_responding_station
		WHERE s.id = $1;
	`
	var lat, lon *float64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&society.ID,
		&society.Name,
		&society.Address,
		&society.Area,
		&society.City,
		&society.SecretaryName,
		&society.SecretaryEmail,
		&society.SecretaryPhone,
		&society.PasswordHash,
		&lat,
		&lon,
		&society.FireStatus.IsActive,
		&society.FireStatus.ActivatedAt,
		&society.FireStatus.RespondingStation,
		&society.FireStatus.StationName,
		&society.CreatedAt,
		&society.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromStore("get society by id", err)
	}
	society.Location = locationFromCoords(lat, lon)

	residents, err := r.listResidents(ctx, id)
	if err != nil {
		return nil, err
	}
	society.Residents = residents
	return society, nil
}

// GetByEmail возвращает общество по email секретаря, без списка жителей
func (r *SocietyRepository) GetByEmail(ctx context.Context, email string) (*models.Society, error) {
	society := &models.Society{}
	query := `
		SELECT
			id,
			name,
			address,
			area,
			city,
			secretary_name,
			secretary_email,
			secretary_phone,
			password_hash,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			created_at,
			updated_at
		FROM societies
		WHERE secretary_email = $1;
	`
	var lat, lon *float64
	err := r.db.QueryRow(ctx, query, email).Scan(
		&society.ID,
		&society.Name,
		&society.Address,
		&society.Area,
		&society.City,
		&society.SecretaryName,
		&society.SecretaryEmail,
		&society.SecretaryPhone,
		&society.PasswordHash,
		&lat,
		&lon,
		&society.CreatedAt,
		&society.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromStore("get society by email", err)
	}
	society.Location = locationFromCoords(lat, lon)
	return society, nil
}

// UpdateLocation обновляет координаты общества
func (r *SocietyRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location models.Location) error {
	query := `
		UPDATE societies SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, location.Longitude, location.Latitude, id)
	if err != nil {
		return apperr.FromStore("update society location", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("society with id %s not found for update: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// AddResident добавляет жителя; уникальность номера квартиры обеспечивает бд
func (r *SocietyRepository) AddResident(ctx context.Context, societyID uuid.UUID, resident *models.Resident) error {
	query := `
		INSERT INTO residents (society_id, name, email, phone, flat_number)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		societyID,
		resident.Name,
		resident.Email,
		resident.Phone,
		resident.FlatNumber,
	).Scan(&resident.ID, &resident.CreatedAt)
	if err != nil {
		return apperr.FromStore("add resident", err)
	}
	return nil
}

// RemoveResident удаляет жителя общества
func (r *SocietyRepository) RemoveResident(ctx context.Context, societyID, residentID uuid.UUID) error {
	query := `DELETE FROM residents WHERE id = $1 AND society_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, residentID, societyID)
	if err != nil {
		return apperr.FromStore("remove resident", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("resident with id %s not found: %w", residentID, apperr.ErrNotFound)
	}
	return nil
}

// ClaimFire — атомарный условный UPDATE: тревога включается, только если
// сейчас выключена. Проверка и запись неделимы на уровне строки, гонка
// чтение-потом-запись исключена.
func (r *SocietyRepository) ClaimFire(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE societies SET
			fire_is_active = TRUE,
			fire_activated_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND fire_is_active = FALSE;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, apperr.FromStore("claim fire", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// ReleaseFire снимает тревогу и очищает назначенную станцию (компенсация)
func (r *SocietyRepository) ReleaseFire(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE societies SET
			fire_is_active = FALSE,
			fire_responding_station = NULL,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperr.FromStore("release fire", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("society with id %s not found for release: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CompleteFire снимает тревогу, оставляя станцию записанной в истории
func (r *SocietyRepository) CompleteFire(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE societies SET
			fire_is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperr.FromStore("complete fire", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("society with id %s not found for complete: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// SetRespondingStation назначает обществу реагирующую станцию
func (r *SocietyRepository) SetRespondingStation(ctx context.Context, societyID, stationID uuid.UUID) error {
	query := `
		UPDATE societies SET
			fire_responding_station = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, stationID, societyID)
	if err != nil {
		return apperr.FromStore("set responding station", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("society with id %s not found: %w", societyID, apperr.ErrNotFound)
	}
	return nil
}

// GetFireStatus возвращает снимок состояния тревоги общества
func (r *SocietyRepository) GetFireStatus(ctx context.Context, id uuid.UUID) (*models.FireStatus, error) {
	status := &models.FireStatus{}
	query := `
		SELECT
			s.fire_is_active,
			s.fire_activated_at,
			s.fire_responding_station,
			COALESCE(f.station_name, '') as station_name
		FROM societies s
		LEFT JOIN fire_stations f ON f.id = s.fire_responding_station
		WHERE s.id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&status.IsActive,
		&status.ActivatedAt,
		&status.RespondingStation,
		&status.StationName,
	)
	if err != nil {
		return nil, apperr.FromStore("get fire status", err)
	}
	return status, nil
}

// GetFireStatusFromCache пытается получить статус тревоги из Redis
func (r *SocietyRepository) GetFireStatusFromCache(ctx context.Context, id uuid.UUID) (*models.FireStatus, error) {
	key := fireStatusCacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fire status from cache: %w", err)
	}

	status := &models.FireStatus{}
	if err := json.Unmarshal(val, status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fire status from cache: %w", err)
	}
	return status, nil
}

// SetFireStatusCache сохраняет статус тревоги в Redis
func (r *SocietyRepository) SetFireStatusCache(ctx context.Context, id uuid.UUID, status *models.FireStatus) error {
	val, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal fire status for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, fireStatusCacheKey(id), val, fireStatusCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set fire status in cache: %w", err)
	}
	return nil
}

// InvalidateFireStatusCache удаляет статус тревоги из Redis кэша
func (r *SocietyRepository) InvalidateFireStatusCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, fireStatusCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate fire status cache: %w", err)
	}
	return nil
}

// listResidents возвращает жителей общества в порядке добавления
func (r *SocietyRepository) listResidents(ctx context.Context, societyID uuid.UUID) ([]models.Resident, error) {
	query := `
		SELECT id, name, email, phone, flat_number, created_at
		FROM residents
		WHERE society_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, societyID)
	if err != nil {
		return nil, apperr.FromStore("list residents", err)
	}
	defer rows.Close()

	residents := make([]models.Resident, 0)
	for rows.Next() {
		resident := models.Resident{}
		err := rows.Scan(
			&resident.ID,
			&resident.Name,
			&resident.Email,
			&resident.Phone,
			&resident.FlatNumber,
			&resident.CreatedAt,
		)
		if err != nil {
			return nil, apperr.FromStore("scan resident row", err)
		}
		residents = append(residents, resident)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore("residents iteration", err)
	}
	return residents, nil
}

func fireStatusCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("fire_status:%s", id.String())
}

// locationArgs раскладывает опциональные координаты в аргументы запроса
func locationArgs(location *models.Location) (lon, lat *float64) {
	if location == nil {
		return nil, nil
	}
	return &location.Longitude, &location.Latitude
}

// locationFromCoords собирает Location из nullable-колонок
func locationFromCoords(lat, lon *float64) *models.Location {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.Location{Latitude: *lat, Longitude: *lon}
}
