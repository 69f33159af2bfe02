package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/captain_radius/internal/config"
	"github.com/shenikar/captain_radius/internal/geo"
	"github.com/shenikar/captain_radius/internal/models"
	"github.com/shenikar/captain_radius/internal/service/mocks"
	"github.com/shenikar/captain_radius/internal/webhook"
	webhook_mocks "github.com/shenikar/captain_radius/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type radiusCheckDeps struct {
	validator *mocks.MockGeoValidator
	repo      *mocks.MockRadiusCheckRepository
	publisher *webhook_mocks.MockWebhookPublisher
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

func newTestRadiusCheckService(t *testing.T) (RadiusCheckService, radiusCheckDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := radiusCheckDeps{
		validator: mocks.NewMockGeoValidator(ctrl),
		repo:      mocks.NewMockRadiusCheckRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	cfg := &config.Config{StatsTimeWindowMinutes: 15, DefaultRadiusKm: config.DefaultRadiusKm}

	svc := NewRadiusCheckService(deps.validator, deps.repo, logger, cfg, deps.publisher)
	svc.(*radiusCheckService).now = func() time.Time { return fixedNow }
	return svc, deps
}

func ptr[T any](v T) *T { return &v }

func TestCheckDestination_WithinRadius(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()
	req := models.RadiusCheckRequest{OriginText: " Jaipur, Rajasthan ", DestinationText: "Ajmer"}

	// Ожидания
	deps.validator.EXPECT().CheckWithinRadius(ctx, req).Return(&models.RadiusCheckResult{
		WithinRadius: true,
		DistanceKm:   ptr(125.06),
		Reason:       models.ReasonWithinRadius,
	})
	deps.validator.EXPECT().EffectiveRadius(0.0).Return(150.0)
	deps.repo.EXPECT().SaveRadiusCheck(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, check *models.RadiusCheck) error {
			assert.Equal(t, "captain-7", check.CaptainID)
			assert.Equal(t, "Jaipur, Rajasthan", check.OriginText)
			assert.Equal(t, 150.0, check.RadiusKm)
			assert.True(t, check.WithinRadius)
			return nil
		})
	// Вебхук не публикуется
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	check := svc.CheckDestination(ctx, " captain-7 ", req)

	// Проверки
	require.NotNil(t, check)
	assert.NotEmpty(t, check.ID)
	assert.True(t, check.WithinRadius)
	assert.Nil(t, check.Message)
	require.NotNil(t, check.DistanceKm)
	assert.Equal(t, 125.06, *check.DistanceKm)
	assert.Equal(t, models.ReasonWithinRadius, check.Reason)
	assert.Equal(t, fixedNow.UTC(), check.CheckedAt)
	assert.Equal(t, time.UTC, check.CheckedAt.Location())
}

func TestCheckDestination_RejectedPublishesWebhook(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()
	req := models.RadiusCheckRequest{OriginText: "Jaipur, Rajasthan", DestinationText: "Shimla", RadiusKm: 150}
	msg := "This captain operates only within 150 km of Jaipur, Rajasthan."

	// Ожидания
	deps.validator.EXPECT().CheckWithinRadius(ctx, req).Return(&models.RadiusCheckResult{
		WithinRadius: false,
		DistanceKm:   ptr(485.25),
		Message:      &msg,
		Reason:       models.ReasonOutOfRadius,
	})
	deps.validator.EXPECT().EffectiveRadius(150.0).Return(150.0)

	var saved *models.RadiusCheck
	gomock.InOrder(
		deps.repo.EXPECT().SaveRadiusCheck(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, check *models.RadiusCheck) error {
				saved = check
				return nil
			}),
		deps.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event webhook.WebhookEvent) error {
				assert.Equal(t, webhook.EventRadiusRejected, event.Event)
				assert.Same(t, saved, event.Check)
				assert.Equal(t, fixedNow.UTC(), event.Timestamp)
				return nil
			}),
	)

	// Действие
	check := svc.CheckDestination(ctx, "captain-7", req)

	// Проверки
	assert.False(t, check.WithinRadius)
	require.NotNil(t, check.Message)
	assert.Equal(t, msg, *check.Message)
	assert.Equal(t, models.ReasonOutOfRadius, check.Reason)
}

func TestCheckDestination_OriginUnresolvedIsNotPublished(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()
	req := models.RadiusCheckRequest{OriginText: "Nowhereville999", DestinationText: "Shimla"}

	deps.validator.EXPECT().CheckWithinRadius(ctx, req).Return(&models.RadiusCheckResult{
		WithinRadius: true,
		Reason:       models.ReasonOriginUnresolved,
	})
	deps.validator.EXPECT().EffectiveRadius(0.0).Return(150.0)
	deps.repo.EXPECT().SaveRadiusCheck(ctx, gomock.Any()).Return(nil)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	check := svc.CheckDestination(ctx, "", req)

	assert.True(t, check.WithinRadius)
	assert.Nil(t, check.DistanceKm)
	assert.Equal(t, models.ReasonOriginUnresolved, check.Reason)
}

func TestCheckDestination_SideEffectFailuresDoNotChangeVerdict(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()
	req := models.RadiusCheckRequest{OriginText: "Jaipur", DestinationText: "Xyzzy"}
	msg := "Could not find the destination."

	deps.validator.EXPECT().CheckWithinRadius(ctx, req).Return(&models.RadiusCheckResult{
		WithinRadius: false,
		Message:      &msg,
		Reason:       models.ReasonDestinationUnresolved,
	})
	deps.validator.EXPECT().EffectiveRadius(0.0).Return(150.0)
	deps.repo.EXPECT().SaveRadiusCheck(ctx, gomock.Any()).Return(errors.New("db is down"))
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis is down"))

	check := svc.CheckDestination(ctx, "captain-7", req)

	require.NotNil(t, check)
	assert.False(t, check.WithinRadius)
	assert.Equal(t, models.ReasonDestinationUnresolved, check.Reason)
	assert.Equal(t, &msg, check.Message)
}

func TestResolve_DelegatesToValidator(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()
	shimla := geo.Coordinate{Latitude: 31.1048, Longitude: 77.1734}

	deps.validator.EXPECT().Resolve(ctx, "Shimla").Return(shimla, true)
	deps.validator.EXPECT().Resolve(ctx, "Atlantis").Return(geo.Coordinate{}, false)

	point, ok := svc.Resolve(ctx, "Shimla")
	assert.True(t, ok)
	assert.Equal(t, shimla, point)

	_, ok = svc.Resolve(ctx, "Atlantis")
	assert.False(t, ok)
}

func TestListChecks(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid pagination", 2, 50, 2, 50},
		{"page below one", 0, 10, 1, 10},
		{"page size below one", 1, 0, 1, 20},
		{"page size above limit", 3, 500, 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestRadiusCheckService(t)
			ctx := context.Background()
			expected := []*models.RadiusCheck{{CaptainID: "captain-7"}}

			deps.repo.EXPECT().ListRadiusChecks(ctx, tt.wantPage, tt.wantPageSize).Return(expected, nil)

			checks, err := svc.ListChecks(ctx, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, expected, checks)
		})
	}
}

func TestListChecks_RepositoryError(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()
	repoErr := errors.New("connection reset")

	deps.repo.EXPECT().ListRadiusChecks(ctx, 1, 20).Return(nil, repoErr)

	checks, err := svc.ListChecks(ctx, 1, 20)
	assert.Nil(t, checks)
	require.ErrorIs(t, err, repoErr)
	assert.ErrorContains(t, err, "service: could not list radius checks")
}

func TestGetStats(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetRadiusCheckStats(ctx, 15).Return(&models.RadiusCheckStats{
		Total:            12,
		Rejected:         4,
		OriginUnresolved: 1,
	}, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 4, stats.Rejected)
	assert.Equal(t, 1, stats.OriginUnresolved)
	assert.Equal(t, 15, stats.WindowMinutes)
}

func TestGetStats_RepositoryError(t *testing.T) {
	svc, deps := newTestRadiusCheckService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetRadiusCheckStats(ctx, 15).Return(nil, errors.New("timeout"))

	stats, err := svc.GetStats(ctx)
	assert.Nil(t, stats)
	assert.ErrorContains(t, err, "service: could not get radius check stats")
}
