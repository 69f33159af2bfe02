package geocoder

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Cache хранит найденные координаты по нормализованному тексту запроса
type Cache interface {
	GetCandidate(ctx context.Context, key string) (*Candidate, error)
	SetCandidate(ctx context.Context, key string, candidate Candidate, ttl time.Duration) error
}

// CachingProvider запоминает лучшее совпадение для запроса на время ttl.
// Пустые ответы и ошибки не кешируются.
type CachingProvider struct {
	next   Provider
	cache  Cache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachingProvider оборачивает provider кешем
func NewCachingProvider(next Provider, cache Cache, ttl time.Duration, logger *logrus.Logger) *CachingProvider {
	return &CachingProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Search implements Provider.
func (p *CachingProvider) Search(ctx context.Context, text string) ([]Candidate, error) {
	key := NormalizeQuery(text)
	log := p.logger.WithFields(logrus.Fields{
		"component": "geocoder",
		"cache_key": key,
	})

	cached, err := p.cache.GetCandidate(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Failed to read geocode cache, querying provider")
	} else if cached != nil {
		log.Debug("Geocode cache hit")
		return []Candidate{*cached}, nil
	}

	candidates, err := p.next.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return candidates, nil
	}

	if err := p.cache.SetCandidate(ctx, key, candidates[0], p.ttl); err != nil {
		log.WithError(err).Warn("Failed to store geocode result in cache")
	}
	return candidates, nil
}
