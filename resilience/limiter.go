package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned when a call is rejected without waiting.
var ErrRateLimited = errors.New("resilience: rate limit exceeded")

// LimiterConfig configures a token bucket rate limiter.
type LimiterConfig struct {
	// Name identifies this limiter in logs.
	Name string `yaml:"name" mapstructure:"name"`
	// Rate is the number of calls allowed per second.
	Rate float64 `yaml:"rate" mapstructure:"rate"`
	// Burst is the maximum burst size.
	Burst int `yaml:"burst" mapstructure:"burst"`
	// OnLimit is called when a call has to wait or is rejected.
	OnLimit func(name string) `yaml:"-" mapstructure:"-"`
}

// DefaultLimiterConfig returns sensible defaults.
func DefaultLimiterConfig(name string) LimiterConfig {
	return LimiterConfig{
		Name:  name,
		Rate:  10.0,
		Burst: 20,
	}
}

// Limiter is a token bucket rate limiter.
type Limiter struct {
	config LimiterConfig

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// NewLimiter creates a rate limiter.
func NewLimiter(cfg LimiterConfig) *Limiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 10.0
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.Rate)
		if cfg.Burst < 1 {
			cfg.Burst = 1
		}
	}
	return &Limiter{
		config: cfg,
		tokens: float64(cfg.Burst),
		last:   time.Now(),
	}
}

// Wait blocks until a token is available or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		delay, ok := l.take()
		if ok {
			return nil
		}
		if l.config.OnLimit != nil {
			l.config.OnLimit(l.config.Name)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Allow reports whether a call may proceed without waiting.
func (l *Limiter) Allow() bool {
	_, ok := l.take()
	if !ok && l.config.OnLimit != nil {
		l.config.OnLimit(l.config.Name)
	}
	return ok
}

// take consumes a token if one is available. When none is, it returns the
// delay until the next token.
func (l *Limiter) take() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.tokens += now.Sub(l.last).Seconds() * l.config.Rate
	if l.tokens > float64(l.config.Burst) {
		l.tokens = float64(l.config.Burst)
	}
	l.last = now

	if l.tokens >= 1 {
		l.tokens--
		return 0, true
	}

	deficit := 1 - l.tokens
	return time.Duration(deficit / l.config.Rate * float64(time.Second)), false
}
