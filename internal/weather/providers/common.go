package providers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// BreakerConfig controls when a generator is taken out of rotation.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

var (
	errCircuitOpen    = errors.New("circuit breaker open")
	errUnexpectedType = errors.New("unexpected result type from circuit breaker")
)

// BreakerGenerator fails fast while its backend keeps failing. It never
// retries: each Generate call is at most one upstream request.
type BreakerGenerator struct {
	next    weather.Generator
	circuit *gobreaker.CircuitBreaker
}

// WithBreaker wraps next in a circuit breaker.
func WithBreaker(next weather.Generator, cfg BreakerConfig) *BreakerGenerator {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := cfg.OpenTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Interval:    2 * time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("WARN: generator %s circuit %s -> %s", name, from, to)
		},
	})

	return &BreakerGenerator{next: next, circuit: cb}
}

func (b *BreakerGenerator) Name() string {
	return b.next.Name()
}

func (b *BreakerGenerator) Generate(ctx context.Context, req weather.GenerateRequest) (string, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		return b.next.Generate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return "", err
	}

	text, ok := result.(string)
	if !ok {
		return "", errUnexpectedType
	}
	return text, nil
}

// State exposes the breaker state for health reporting.
func (b *BreakerGenerator) State() string {
	return b.circuit.State().String()
}
