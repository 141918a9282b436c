package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationDTO - координаты точки
// @Description Координаты точки
type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// RegisterSocietyRequest DTO для регистрации общества
// @Description DTO для регистрации общества
type RegisterSocietyRequest struct {
	Name           string       `json:"name" validate:"required,min=2,max=255"`
	Address        string       `json:"address" validate:"required"`
	Area           string       `json:"area" validate:"required"`
	City           string       `json:"city" validate:"required"`
	SecretaryName  string       `json:"secretary_name" validate:"required"`
	SecretaryEmail string       `json:"secretary_email" validate:"required,email"`
	SecretaryPhone string       `json:"secretary_phone" validate:"required"`
	Password       string       `json:"password" validate:"required,min=8"`
	Location       *LocationDTO `json:"location,omitempty"`
}

// RegisterStationRequest DTO для регистрации пожарной станции
// @Description DTO для регистрации пожарной станции
type RegisterStationRequest struct {
	StationName string       `json:"station_name" validate:"required,min=2,max=255"`
	Address     string       `json:"address" validate:"required"`
	Area        string       `json:"area" validate:"required"`
	City        string       `json:"city" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	Password    string       `json:"password" validate:"required,min=8"`
	Phone       string       `json:"phone" validate:"required"`
	Location    *LocationDTO `json:"location,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse DTO с выданным токеном
// @Description DTO с выданным токеном
type TokenResponse struct {
	Token string `json:"token"`
}

// AddResidentRequest DTO для добавления жителя
// @Description DTO для добавления жителя
type AddResidentRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	FlatNumber string `json:"flat_number" validate:"required"`
}

// AddPersonnelRequest DTO для добавления сотрудника станции
// @Description DTO для добавления сотрудника станции
type AddPersonnelRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role" validate:"required"`
}

// UpdateResponseRequest DTO для смены статуса выезда
// @Description DTO для смены статуса выезда
type UpdateResponseRequest struct {
	Status string `json:"status" validate:"required,oneof=responding completed"`
}

// DispatchResponse DTO с итогом диспетчеризации тревоги
// @Description DTO с итогом диспетчеризации тревоги
type DispatchResponse struct {
	Message        string    `json:"message"`
	StationID      uuid.UUID `json:"station_id"`
	StationName    string    `json:"station_name"`
	ResponseID     uuid.UUID `json:"response_id"`
	ResidentsTotal int       `json:"residents_total"`
	NotifyFailures int       `json:"notify_failures,omitempty"`
}

// FireStatusResponse DTO со статусом тревоги общества
// @Description DTO со статусом тревоги общества
type FireStatusResponse struct {
	IsActive          bool       `json:"is_active"`
	ActivatedAt       *time.Time `json:"activated_at,omitempty"`
	RespondingStation *uuid.UUID `json:"responding_station,omitempty"`
	StationName       string     `json:"station_name,omitempty"`
}

// ResponseDTO DTO записи о выезде
// @Description DTO записи о выезде
type ResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	StationID uuid.UUID `json:"station_id"`
	SocietyID uuid.UUID `json:"society_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveResponseDTO DTO активного выезда с данными общества
// @Description DTO активного выезда с данными общества
type ActiveResponseDTO struct {
	ResponseDTO
	SocietyName     string       `json:"society_name"`
	SocietyAddress  string       `json:"society_address"`
	SocietyLocation *LocationDTO `json:"society_location,omitempty"`
}

// StationStatsResponse DTO со статистикой станции
// @Description DTO со статистикой станции
type StationStatsResponse struct {
	TotalResponses     int     `json:"total_responses"`
	ResolvedResponses  int     `json:"resolved_responses"`
	PersonnelCount     int     `json:"personnel_count"`
	AvgResponseSeconds float64 `json:"avg_response_seconds"`
}

// MessageResponse DTO с текстовым сообщением
// @Description DTO с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
