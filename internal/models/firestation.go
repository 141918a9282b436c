package models

import (
	"time"

	"github.com/google/uuid"
)

// Personnel — сотрудник пожарной станции
type Personnel struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// FireStation — пожарная станция
type FireStation struct {
	ID           uuid.UUID   `json:"id"`
	StationName  string      `json:"station_name"`
	Address      string      `json:"address"`
	Area         string      `json:"area"`
	City         string      `json:"city"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        string      `json:"phone"`
	Location     *Location   `json:"location,omitempty"`
	Personnel    []Personnel `json:"personnel"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// StationStats — агрегированная статистика станции.
// AvgResponseSeconds — среднее время от выезда до завершения по
// завершённым выездам, 0 при их отсутствии.
type StationStats struct {
	TotalResponses     int     `json:"total_responses"`
	ResolvedResponses  int     `json:"resolved_responses"`
	PersonnelCount     int     `json:"personnel_count"`
	AvgResponseSeconds float64 `json:"avg_response_seconds"`
}
