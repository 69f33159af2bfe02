package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckReason - причина, по которой был вынесен вердикт проверки радиуса
type CheckReason string

const (
	ReasonMissingInput          CheckReason = "missing_input"
	ReasonOriginUnresolved      CheckReason = "origin_unresolved"
	ReasonDestinationUnresolved CheckReason = "destination_unresolved"
	ReasonOutOfRadius           CheckReason = "out_of_radius"
	ReasonWithinRadius          CheckReason = "within_radius"
)

// RadiusCheckRequest - запрос на проверку, находится ли пункт назначения в радиусе работы капитана
type RadiusCheckRequest struct {
	OriginText      string  `json:"origin"`
	DestinationText string  `json:"destination"`
	RadiusKm        float64 `json:"radius_km,omitempty"` // 0 - радиус по умолчанию
}

// RadiusCheckResult - результат проверки радиуса
type RadiusCheckResult struct {
	WithinRadius bool        `json:"within_radius"`
	DistanceKm   *float64    `json:"distance_km"`
	Message      *string     `json:"message"`
	Reason       CheckReason `json:"-"`
}

// RadiusCheck представляет запись аудита о выполненной проверке радиуса
type RadiusCheck struct {
	ID              uuid.UUID   `json:"id"`
	CaptainID       string      `json:"captain_id"`
	OriginText      string      `json:"origin"`
	DestinationText string      `json:"destination"`
	RadiusKm        float64     `json:"radius_km"`
	WithinRadius    bool        `json:"within_radius"`
	DistanceKm      *float64    `json:"distance_km"`
	Message         *string     `json:"message"`
	Reason          CheckReason `json:"reason"`
	CheckedAt       time.Time   `json:"checked_at"`
}

// RadiusCheckStats - агрегированная статистика проверок за окно времени
type RadiusCheckStats struct {
	Total            int `json:"total"`
	Rejected         int `json:"rejected"`
	OriginUnresolved int `json:"origin_unresolved"`
	WindowMinutes    int `json:"window_minutes"`
}
