package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponseStatus — статус выезда станции
type ResponseStatus string

const (
	ResponseStatusResponding ResponseStatus = "responding"
	// ResponseStatusCompleted — терминальный статус, переходы из него запрещены
	ResponseStatusCompleted ResponseStatus = "completed"
)

// Valid сообщает, является ли значение допустимым статусом выезда
func (s ResponseStatus) Valid() bool {
	return s == ResponseStatusResponding || s == ResponseStatusCompleted
}

// Response — запись о выезде станции на пожар в обществе.
// Принадлежит ровно одной станции, хранит невладеющую ссылку на общество.
type Response struct {
	ID        uuid.UUID      `json:"id"`
	StationID uuid.UUID      `json:"station_id"`
	SocietyID uuid.UUID      `json:"society_id"`
	Status    ResponseStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ActiveResponse — активный выезд вместе с данными общества для станции
type ActiveResponse struct {
	Response
	SocietyName     string    `json:"society_name"`
	SocietyAddress  string    `json:"society_address"`
	SocietyLocation *Location `json:"society_location,omitempty"`
}

// DispatchResult — итог успешной диспетчеризации тревоги
type DispatchResult struct {
	StationID      uuid.UUID `json:"station_id"`
	StationName    string    `json:"station_name"`
	ResponseID     uuid.UUID `json:"response_id"`
	ResidentsTotal int       `json:"residents_total"`
	NotifyFailures int       `json:"notify_failures"`
}
