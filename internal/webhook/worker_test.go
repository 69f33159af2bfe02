package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/captain_radius/internal/config"
	"github.com/shenikar/captain_radius/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер без Redis: проверяется только доставка
func newTestWorker(cfg *config.Config) (*WebhookWorker, *logrus.Entry) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	return NewWebhookWorker(nil, logger, cfg), logrus.NewEntry(logger)
}

func rejectionPayload(t *testing.T) string {
	msg := "Could not find the destination."
	event := WebhookEvent{
		Event: EventRadiusRejected,
		Check: &models.RadiusCheck{
			ID:              uuid.New(),
			CaptainID:       "captain-7",
			OriginText:      "Jaipur, Rajasthan",
			DestinationText: "Xyzzy",
			RadiusKm:        150,
			Message:         &msg,
			Reason:          models.ReasonDestinationUnresolved,
		},
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return string(payload)
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := rejectionPayload(t)
	var gotSignature, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker, log := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookMaxRetries: 3,
	})

	err := worker.deliver(context.Background(), payload, log)
	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker, log := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	err := worker.deliver(context.Background(), rejectionPayload(t), log)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker, log := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	err := worker.deliver(context.Background(), rejectionPayload(t), log)
	require.Error(t, err)
	assert.ErrorContains(t, err, "after 2 attempts")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDeliver_StopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	worker, log := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	err := worker.deliver(ctx, rejectionPayload(t), log)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// echo -n 'payload' | openssl dgst -sha256 -hmac 'key'
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", generateHMACSHA256("payload", "key"))
	assert.NotEqual(t, generateHMACSHA256("payload", "key"), generateHMACSHA256("payload", "other"))
}
