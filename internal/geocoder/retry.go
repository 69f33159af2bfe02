package geocoder

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// RetryingProvider повторяет запрос к геокодеру при временных ошибках
type RetryingProvider struct {
	next       Provider
	maxRetries int
	baseDelay  time.Duration
	logger     *logrus.Logger
}

// NewRetryingProvider оборачивает provider. maxRetries = 0 отключает повторы.
func NewRetryingProvider(next Provider, maxRetries int, baseDelay time.Duration, logger *logrus.Logger) *RetryingProvider {
	if baseDelay <= 0 {
		baseDelay = 200 * time.Millisecond
	}
	return &RetryingProvider{
		next:       next,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
	}
}

// Search implements Provider.
func (p *RetryingProvider) Search(ctx context.Context, text string) ([]Candidate, error) {
	if p.maxRetries <= 0 {
		return p.next.Search(ctx, text)
	}

	var candidates []Candidate
	operation := func() error {
		res, err := p.next.Search(ctx, text)
		if err != nil {
			if IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		candidates = res
		return nil
	}

	notify := func(err error, delay time.Duration) {
		p.logger.WithFields(logrus.Fields{
			"component": "geocoder",
			"query":     text,
			"delay":     delay.String(),
		}).WithError(err).Warn("Transient geocoding error, retrying")
	}

	if err := backoff.RetryNotify(operation, p.newBackOff(ctx), notify); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (p *RetryingProvider) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.baseDelay
	exp.MaxInterval = 10 * p.baseDelay
	exp.MaxElapsedTime = 0 // ограничиваемся количеством попыток
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.maxRetries)), ctx)
}
