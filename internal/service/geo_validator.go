package service

//go:generate mockgen -source=geo_validator.go -destination=mocks/mock_geo_validator.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/captain_radius/internal/config"
	"github.com/shenikar/captain_radius/internal/geo"
	"github.com/shenikar/captain_radius/internal/geocoder"
	"github.com/shenikar/captain_radius/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	msgInputRequired       = "Captain location and destination are required."
	msgDestinationNotFound = "Could not find the destination. Please enter a valid city or area name (e.g. within %s or nearby)."
	msgOutOfRadius         = "This captain operates only within %s km of %s. Your destination is about %d km away. Please choose a destination near %s."
)

// GeoValidator определяет контракт проверки радиуса работы капитана
type GeoValidator interface {
	// Resolve находит координаты места. false - место не найдено,
	// включая ошибки сети и разбора ответа.
	Resolve(ctx context.Context, placeText string) (geo.Coordinate, bool)
	// CheckWithinRadius никогда не возвращает ошибку: любой исход - это вердикт
	CheckWithinRadius(ctx context.Context, req models.RadiusCheckRequest) *models.RadiusCheckResult
	// EffectiveRadius возвращает радиус, который будет применен к запросу
	EffectiveRadius(radiusKm float64) float64
}

type geoValidator struct {
	provider        geocoder.Provider
	country         string
	defaultRadiusKm float64
	logger          *logrus.Logger
}

// NewGeoValidator создает валидатор поверх провайдера геокодирования
func NewGeoValidator(provider geocoder.Provider, logger *logrus.Logger, cfg *config.Config) GeoValidator {
	defaultRadius := cfg.DefaultRadiusKm
	if defaultRadius <= 0 {
		defaultRadius = config.DefaultRadiusKm
	}
	return &geoValidator{
		provider:        provider,
		country:         cfg.GeocoderCountry,
		defaultRadiusKm: defaultRadius,
		logger:          logger,
	}
}

// Resolve находит координаты лучшего совпадения для названия места
func (v *geoValidator) Resolve(ctx context.Context, placeText string) (geo.Coordinate, bool) {
	text := strings.TrimSpace(placeText)
	if text == "" {
		return geo.Coordinate{}, false
	}

	query := geocoder.ScopeQuery(text, v.country)
	log := v.logger.WithFields(logrus.Fields{
		"service": "geo_validator",
		"method":  "Resolve",
		"query":   query,
	})

	candidates, err := v.provider.Search(ctx, query)
	if err != nil {
		log.WithError(err).Warn("Geocoding request failed")
		return geo.Coordinate{}, false
	}
	if len(candidates) == 0 {
		log.Warn("Geocoder returned no matches")
		return geo.Coordinate{}, false
	}

	best := candidates[0]
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(best.Lat), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(best.Lon), 64)
	if latErr != nil || lonErr != nil || !validLatLon(lat, lon) {
		log.WithFields(logrus.Fields{
			"lat": best.Lat,
			"lon": best.Lon,
		}).Warn("Geocoder returned malformed coordinates")
		return geo.Coordinate{}, false
	}

	return geo.Coordinate{Latitude: lat, Longitude: lon}, true
}

// CheckWithinRadius проверяет, что пункт назначения находится в радиусе от базы капитана
func (v *geoValidator) CheckWithinRadius(ctx context.Context, req models.RadiusCheckRequest) *models.RadiusCheckResult {
	origin := strings.TrimSpace(req.OriginText)
	destination := strings.TrimSpace(req.DestinationText)
	radius := v.EffectiveRadius(req.RadiusKm)

	if origin == "" || destination == "" {
		return rejected(models.ReasonMissingInput, nil, msgInputRequired)
	}

	originPoint, ok := v.Resolve(ctx, origin)
	if !ok {
		// База капитана не найдена: пропускаем запрос, а не блокируем его
		return &models.RadiusCheckResult{WithinRadius: true, Reason: models.ReasonOriginUnresolved}
	}

	destinationPoint, ok := v.Resolve(ctx, destination)
	if !ok {
		return rejected(models.ReasonDestinationUnresolved, nil, fmt.Sprintf(msgDestinationNotFound, origin))
	}

	distance := geo.DistanceKm(originPoint, destinationPoint)
	if distance > radius {
		msg := fmt.Sprintf(msgOutOfRadius, formatKm(radius), origin, int64(math.Round(distance)), origin)
		return rejected(models.ReasonOutOfRadius, &distance, msg)
	}

	return &models.RadiusCheckResult{
		WithinRadius: true,
		DistanceKm:   &distance,
		Reason:       models.ReasonWithinRadius,
	}
}

// EffectiveRadius подставляет радиус по умолчанию вместо незаданного или некорректного
func (v *geoValidator) EffectiveRadius(radiusKm float64) float64 {
	if radiusKm > 0 && !math.IsInf(radiusKm, 1) {
		return radiusKm
	}
	return v.defaultRadiusKm
}

func rejected(reason models.CheckReason, distance *float64, message string) *models.RadiusCheckResult {
	return &models.RadiusCheckResult{
		WithinRadius: false,
		DistanceKm:   distance,
		Message:      &message,
		Reason:       reason,
	}
}

// formatKm печатает радиус в кратчайшей десятичной форме: 150, 12.5
func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}

func validLatLon(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
