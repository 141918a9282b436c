package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/service"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
)

type StationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) service.StationRepository {
	return &StationRepository{db: db}
}

// Create создает новую запись о пожарной станции в бд
func (r *StationRepository) Create(ctx context.Context, station *models.FireStation) error {
	query := `
		INSERT INTO fire_stations (station_name, address, area, city, email, password_hash, phone, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			CASE WHEN $8::float8 IS NULL THEN NULL
			     ELSE ST_SetSRID(ST_MakePoint($8, $9), 4326)::geography END)
		RETURNING id, created_at, updated_at;
	`
	lon, lat := locationArgs(station.Location)
	err := r.db.QueryRow(ctx, query,
		station.StationName,
		station.Address,
		station.Area,
		station.City,
		station.Email,
		station.PasswordHash,
		station.Phone,
		lon,
		lat,
	).Scan(&station.ID, &station.CreatedAt, &station.UpdatedAt)
	if err != nil {
		return apperr.FromStore("create fire station", err)
	}
	return nil
}

// GetByID возвращает станцию с персоналом
func (r *StationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FireStation, error) {
	station, err := r.getOne(ctx, `WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	personnel, err := r.listPersonnel(ctx, id)
	if err != nil {
		return nil, err
	}
	station.Personnel = personnel
	return station, nil
}

// GetByEmail возвращает станцию по email, без персонала
func (r *StationRepository) GetByEmail(ctx context.Context, email string) (*models.FireStation, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

// FindNearest возвращает ближайшую станцию в радиусе radiusMeters от точки
// или nil, если в радиусе никого нет. Поиск идет по геодезическому
// расстоянию, порядок — KNN по geometry (использует GIST-индекс).
func (r *StationRepository) FindNearest(ctx context.Context, location models.Location, radiusMeters float64) (*models.FireStation, error) {
	station := &models.FireStation{}
	query := `
		SELECT
			id,
			station_name,
			address,
			area,
			city,
			email,
			password_hash,
			phone,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			created_at,
			updated_at
		FROM fire_stations
		WHERE
			location IS NOT NULL
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY location::geometry <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)
		LIMIT 1;
	`
	var lat, lon *float64
	err := r.db.QueryRow(ctx, query, location.Longitude, location.Latitude, radiusMeters).Scan(
		&station.ID,
		&station.StationName,
		&station.Address,
		&station.Area,
		&station.City,
		&station.Email,
		&station.PasswordHash,
		&station.Phone,
		&lat,
		&lon,
		&station.CreatedAt,
		&station.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.FromStore("find nearest station", err)
	}
	station.Location = locationFromCoords(lat, lon)
	return station, nil
}

// AddPersonnel добавляет сотрудника станции
func (r *StationRepository) AddPersonnel(ctx context.Context, stationID uuid.UUID, person *models.Personnel) error {
	query := `
		INSERT INTO personnel (station_id, name, email, phone, role)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		stationID,
		person.Name,
		person.Email,
		person.Phone,
		person.Role,
	).Scan(&person.ID, &person.CreatedAt)
	if err != nil {
		return apperr.FromStore("add personnel", err)
	}
	return nil
}

// GetStats возвращает агрегаты по выездам и персоналу станции
func (r *StationRepository) GetStats(ctx context.Context, stationID uuid.UUID) (*models.StationStats, error) {
	stats := &models.StationStats{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM responses WHERE station_id = $1),
			(SELECT COUNT(*) FROM responses WHERE station_id = $1 AND status = 'completed'),
			(SELECT COUNT(*) FROM personnel WHERE station_id = $1),
			(SELECT COALESCE(EXTRACT(EPOCH FROM AVG(updated_at - created_at)), 0)
			 FROM responses WHERE station_id = $1 AND status = 'completed');
	`
	err := r.db.QueryRow(ctx, query, stationID).Scan(
		&stats.TotalResponses,
		&stats.ResolvedResponses,
		&stats.PersonnelCount,
		&stats.AvgResponseSeconds,
	)
	if err != nil {
		return nil, apperr.FromStore("get station stats", err)
	}
	return stats, nil
}

// getOne возвращает одну станцию по произвольному условию
func (r *StationRepository) getOne(ctx context.Context, where string, arg any) (*models.FireStation, error) {
	station := &models.FireStation{}
	query := fmt.Sprintf(`
		SELECT
			id,
			station_name,
			address,
			area,
			city,
			email,
			password_hash,
			phone,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			created_at,
			updated_at
		FROM fire_stations
		%s;
	`, where)
	var lat, lon *float64
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&station.ID,
		&station.StationName,
		&station.Address,
		&station.Area,
		&station.City,
		&station.Email,
		&station.PasswordHash,
		&station.Phone,
		&lat,
		&lon,
		&station.CreatedAt,
		&station.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromStore("get fire station", err)
	}
	station.Location = locationFromCoords(lat, lon)
	return station, nil
}

// listPersonnel возвращает персонал станции в порядке добавления
func (r *StationRepository) listPersonnel(ctx context.Context, stationID uuid.UUID) ([]models.Personnel, error) {
	query := `
		SELECT id, name, email, phone, role, created_at
		FROM personnel
		WHERE station_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		return nil, apperr.FromStore("list personnel", err)
	}
	defer rows.Close()

	personnel := make([]models.Personnel, 0)
	for rows.Next() {
		person := models.Personnel{}
		err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Email,
			&person.Phone,
			&person.Role,
			&person.CreatedAt,
		)
		if err != nil {
			return nil, apperr.FromStore("scan personnel row", err)
		}
		personnel = append(personnel, person)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore("personnel iteration", err)
	}
	return personnel, nil
}
