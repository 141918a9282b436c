package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/service"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
)

// Записи о выездах хранятся отдельной таблицей, а не вложенным массивом на
// станции: параллельные обновления статусов разных выездов одной станции
// не конкурируют за одну строку.
type ResponseRepository struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) service.ResponseRepository {
	return &ResponseRepository{db: db}
}

// Create создает новую запись о выезде
func (r *ResponseRepository) Create(ctx context.Context, response *models.Response) error {
	query := `
		INSERT INTO responses (station_id, society_id, status)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		response.StationID,
		response.SocietyID,
		response.Status,
	).Scan(&response.ID, &response.CreatedAt, &response.UpdatedAt)
	if err != nil {
		return apperr.FromStore("create response", err)
	}
	return nil
}

// GetByID возвращает выезд станции по идентификатору
func (r *ResponseRepository) GetByID(ctx context.Context, stationID, responseID uuid.UUID) (*models.Response, error) {
	response := &models.Response{}
	query := `
		SELECT id, station_id, society_id, status, created_at, updated_at
		FROM responses
		WHERE id = $1 AND station_id = $2;
	`
	err := r.db.QueryRow(ctx, query, responseID, stationID).Scan(
		&response.ID,
		&response.StationID,
		&response.SocietyID,
		&response.Status,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromStore("get response by id", err)
	}
	return response, nil
}

// UpdateStatus меняет статус выезда
func (r *ResponseRepository) UpdateStatus(ctx context.Context, responseID uuid.UUID, status models.ResponseStatus) error {
	query := `
		UPDATE responses SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, responseID)
	if err != nil {
		return apperr.FromStore("update response status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("response with id %s not found for update: %w", responseID, apperr.ErrNotFound)
	}
	return nil
}

// ListActive возвращает активные выезды станции с данными обществ,
// в порядке диспетчеризации
func (r *ResponseRepository) ListActive(ctx context.Context, stationID uuid.UUID) ([]*models.ActiveResponse, error) {
	query := `
		SELECT
			r.id,
			r.station_id,
			r.society_id,
			r.status,
			r.created_at,
			r.updated_at,
			s.name,
			s.address,
			ST_Y(s.location::geometry) as latitude,
			ST_X(s.location::geometry) as longitude
		FROM responses r
		JOIN societies s ON s.id = r.society_id
		WHERE r.station_id = $1 AND r.status = 'responding'
		ORDER BY r.created_at;
	`
	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		return nil, apperr.FromStore("list active responses", err)
	}
	defer rows.Close()

	responses := make([]*models.ActiveResponse, 0)
	for rows.Next() {
		response := &models.ActiveResponse{}
		var lat, lon *float64
		err := rows.Scan(
			&response.ID,
			&response.StationID,
			&response.SocietyID,
			&response.Status,
			&response.CreatedAt,
			&response.UpdatedAt,
			&response.SocietyName,
			&response.SocietyAddress,
			&lat,
			&lon,
		)
		if err != nil {
			return nil, apperr.FromStore("scan active response row", err)
		}
		response.SocietyLocation = locationFromCoords(lat, lon)
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore("active responses iteration", err)
	}
	return responses, nil
}
