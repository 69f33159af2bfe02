package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/captain_radius/internal/geocoder"
)

const geocodeKeyPrefix = "geocode:"

// GeocodeCache хранит результаты геокодирования в Redis
type GeocodeCache struct {
	redisClient *redis.Client
}

func NewGeocodeCache(redisClient *redis.Client) *GeocodeCache {
	return &GeocodeCache{redisClient: redisClient}
}

// GetCandidate пытается получить совпадение из Redis. nil, nil - промах кеша
func (c *GeocodeCache) GetCandidate(ctx context.Context, key string) (*geocoder.Candidate, error) {
	val, err := c.redisClient.Get(ctx, geocodeKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geocode from cache: %w", err)
	}

	candidate := &geocoder.Candidate{}
	if err := json.Unmarshal(val, candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geocode from cache: %w", err)
	}
	return candidate, nil
}

// SetCandidate сохраняет совпадение в Redis на ttl
func (c *GeocodeCache) SetCandidate(ctx context.Context, key string, candidate geocoder.Candidate, ttl time.Duration) error {
	val, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal geocode for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, geocodeKeyPrefix+key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set geocode in cache: %w", err)
	}
	return nil
}
