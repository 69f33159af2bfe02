package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/captain_radius/internal/models"
)

const (
	webhookQueueKey = "radius_rejections"

	// EventRadiusRejected - капитан не может быть назначен на пункт назначения
	EventRadiusRejected = "radius_check.rejected"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Event     string              `json:"event"`
	Check     *models.RadiusCheck `json:"check"`
	Timestamp time.Time           `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая список Redis как очередь
type RedisWebhookPublisher struct {
	redisClient *redis.Client
	queueKey    string
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
		queueKey:    webhookQueueKey,
	}
}

// Publish ставит событие в очередь
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
