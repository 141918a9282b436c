package models

import (
	"time"

	"github.com/google/uuid"
)

// Location — точка (широта/долгота). Общество или станция без координат
// существовать может, но участвовать в диспетчеризации — нет.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FireStatus — состояние пожарной тревоги общества
type FireStatus struct {
	IsActive          bool       `json:"is_active"`
	ActivatedAt       *time.Time `json:"activated_at,omitempty"`
	RespondingStation *uuid.UUID `json:"responding_station,omitempty"`
	StationName       string     `json:"station_name,omitempty"`
}

// Resident — житель общества, получатель экстренных уведомлений
type Resident struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	FlatNumber string    `json:"flat_number"`
	CreatedAt  time.Time `json:"created_at"`
}

// Society — жилое общество
type Society struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Area           string     `json:"area"`
	City           string     `json:"city"`
	SecretaryName  string     `json:"secretary_name"`
	SecretaryEmail string     `json:"secretary_email"`
	SecretaryPhone string     `json:"secretary_phone"`
	PasswordHash   string     `json:"-"`
	Location       *Location  `json:"location,omitempty"`
	FireStatus     FireStatus `json:"fire_status"`
	Residents      []Resident `json:"residents"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
