package geocoder_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/captain_radius/internal/geocoder"
	"github.com/shenikar/captain_radius/internal/geocoder/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

var shimla = geocoder.Candidate{Lat: "31.1048", Lon: "77.1734", DisplayName: "Shimla, Himachal Pradesh, India"}

func TestRetryingProvider_RetriesTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockProvider(ctrl)
	ctx := context.Background()

	// Ожидания: два временных сбоя, затем успех
	gomock.InOrder(
		next.EXPECT().Search(ctx, "Shimla, India").Return(nil, geocoder.ClassifyHTTPError(503)),
		next.EXPECT().Search(ctx, "Shimla, India").Return(nil, geocoder.ClassifyHTTPError(429)),
		next.EXPECT().Search(ctx, "Shimla, India").Return([]geocoder.Candidate{shimla}, nil),
	)

	p := geocoder.NewRetryingProvider(next, 3, time.Millisecond, silentLogger())
	candidates, err := p.Search(ctx, "Shimla, India")

	require.NoError(t, err)
	assert.Equal(t, []geocoder.Candidate{shimla}, candidates)
}

func TestRetryingProvider_GivesUpAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockProvider(ctrl)
	ctx := context.Background()

	// 1 попытка + 2 повтора
	next.EXPECT().Search(ctx, gomock.Any()).Return(nil, geocoder.ClassifyHTTPError(502)).Times(3)

	p := geocoder.NewRetryingProvider(next, 2, time.Millisecond, silentLogger())
	_, err := p.Search(ctx, "Shimla, India")

	require.Error(t, err)
	assert.True(t, geocoder.IsTransient(err))
}

func TestRetryingProvider_PermanentErrorNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockProvider(ctrl)
	ctx := context.Background()

	next.EXPECT().Search(ctx, gomock.Any()).Return(nil, geocoder.ClassifyHTTPError(400)).Times(1)

	p := geocoder.NewRetryingProvider(next, 5, time.Millisecond, silentLogger())
	_, err := p.Search(ctx, "Shimla, India")

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid request")
}

func TestRetryingProvider_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockProvider(ctrl)
	ctx := context.Background()

	next.EXPECT().Search(ctx, gomock.Any()).Return(nil, geocoder.ClassifyHTTPError(503)).Times(1)

	p := geocoder.NewRetryingProvider(next, 0, time.Millisecond, silentLogger())
	_, err := p.Search(ctx, "Shimla, India")

	require.Error(t, err)
}
