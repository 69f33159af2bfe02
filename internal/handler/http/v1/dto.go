package v1

import (
	"time"

	"github.com/google/uuid"
)

// RadiusCheckRequest DTO для проверки пункта назначения
// @Description DTO для проверки пункта назначения
type RadiusCheckRequest struct {
	CaptainID   string   `json:"captain_id,omitempty" validate:"max=128"`
	Origin      string   `json:"origin" validate:"max=255"`
	Destination string   `json:"destination" validate:"max=255"`
	RadiusKm    *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
}

// RadiusCheckResponse DTO для ответа с вердиктом проверки
// @Description DTO для ответа с вердиктом проверки
type RadiusCheckResponse struct {
	CheckID      uuid.UUID `json:"check_id"`
	WithinRadius bool      `json:"within_radius"`
	DistanceKm   *float64  `json:"distance_km"`
	Message      *string   `json:"message"`
	RadiusKm     float64   `json:"radius_km"`
}

// GeocodeResponse DTO для ответа с координатами места
// @Description DTO для ответа с координатами места
type GeocodeResponse struct {
	Query     string  `json:"query"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RadiusCheckRecordResponse DTO записи журнала проверок
// @Description DTO записи журнала проверок
type RadiusCheckRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	CaptainID    string    `json:"captain_id,omitempty"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	RadiusKm     float64   `json:"radius_km"`
	WithinRadius bool      `json:"within_radius"`
	DistanceKm   *float64  `json:"distance_km"`
	Message      *string   `json:"message"`
	Reason       string    `json:"reason"`
	CheckedAt    time.Time `json:"checked_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total            int `json:"total"`
	Rejected         int `json:"rejected"`
	OriginUnresolved int `json:"origin_unresolved"`
	WindowMinutes    int `json:"window_minutes"`
}
