package service

//go:generate mockgen -source=radius_check.go -destination=mocks/mock_radius_check.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/captain_radius/internal/config"
	"github.com/shenikar/captain_radius/internal/geo"
	"github.com/shenikar/captain_radius/internal/models"
	"github.com/shenikar/captain_radius/internal/webhook"
	"github.com/sirupsen/logrus"
)

// RadiusCheckRepository определяет контракт для журнала проверок радиуса
type RadiusCheckRepository interface {
	SaveRadiusCheck(ctx context.Context, check *models.RadiusCheck) error
	ListRadiusChecks(ctx context.Context, page, pageSize int) ([]*models.RadiusCheck, error)
	GetRadiusCheckStats(ctx context.Context, minutes int) (*models.RadiusCheckStats, error)
}

// RadiusCheckService определяет контракт бизнес-логики проверки радиуса капитана
type RadiusCheckService interface {
	CheckDestination(ctx context.Context, captainID string, req models.RadiusCheckRequest) *models.RadiusCheck
	Resolve(ctx context.Context, placeText string) (geo.Coordinate, bool)
	ListChecks(ctx context.Context, page, pageSize int) ([]*models.RadiusCheck, error)
	GetStats(ctx context.Context) (*models.RadiusCheckStats, error)
}

type radiusCheckService struct {
	validator GeoValidator
	repo      RadiusCheckRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewRadiusCheckService(
	validator GeoValidator,
	repo RadiusCheckRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
) RadiusCheckService {
	return &radiusCheckService{
		validator: validator,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CheckDestination выполняет проверку, сохраняет ее в журнал и уведомляет об отказе.
// Ошибки журнала и вебхука только логируются: вердикт возвращается всегда.
func (s *radiusCheckService) CheckDestination(ctx context.Context, captainID string, req models.RadiusCheckRequest) *models.RadiusCheck {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "radius_check",
		"method":      "CheckDestination",
		"captain_id":  captainID,
		"origin":      req.OriginText,
		"destination": req.DestinationText,
	})
	log.Info("Checking destination radius")

	result := s.validator.CheckWithinRadius(ctx, req)

	check := &models.RadiusCheck{
		ID:              uuid.New(),
		CaptainID:       strings.TrimSpace(captainID),
		OriginText:      strings.TrimSpace(req.OriginText),
		DestinationText: strings.TrimSpace(req.DestinationText),
		RadiusKm:        s.validator.EffectiveRadius(req.RadiusKm),
		WithinRadius:    result.WithinRadius,
		DistanceKm:      result.DistanceKm,
		Message:         result.Message,
		Reason:          result.Reason,
		CheckedAt:       s.now().UTC(),
	}

	log = log.WithFields(logrus.Fields{
		"check_id":      check.ID,
		"within_radius": check.WithinRadius,
		"reason":        check.Reason,
	})

	if err := s.repo.SaveRadiusCheck(ctx, check); err != nil {
		log.WithError(err).Warn("Failed to save radius check")
	}

	if !check.WithinRadius {
		event := webhook.WebhookEvent{
			Event:     webhook.EventRadiusRejected,
			Check:     check,
			Timestamp: check.CheckedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish radius rejection webhook")
		}
	}

	log.Info("Destination radius check completed")
	return check
}

// Resolve находит координаты места для отдельного поиска
func (s *radiusCheckService) Resolve(ctx context.Context, placeText string) (geo.Coordinate, bool) {
	return s.validator.Resolve(ctx, placeText)
}

// ListChecks возвращает журнал проверок с пагинацией
func (s *radiusCheckService) ListChecks(ctx context.Context, page, pageSize int) ([]*models.RadiusCheck, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "radius_check",
		"method":    "ListChecks",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing radius checks")

	checks, err := s.repo.ListRadiusChecks(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list radius checks from repository")
		return nil, fmt.Errorf("service: could not list radius checks: %w", err)
	}

	log.WithField("count", len(checks)).Info("Radius checks listed successfully")
	return checks, nil
}

// GetStats возвращает статистику проверок за настроенное окно
func (s *radiusCheckService) GetStats(ctx context.Context) (*models.RadiusCheckStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "radius_check",
		"method":  "GetStats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	stats, err := s.repo.GetRadiusCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get radius check stats")
		return nil, fmt.Errorf("service: could not get radius check stats: %w", err)
	}
	stats.WindowMinutes = s.cfg.StatsTimeWindowMinutes
	return stats, nil
}
