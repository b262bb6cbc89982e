// Package ticketing implements the support ticket lifecycle: ticket channels
// are provisioned under per-type categories, prioritized, closed into an
// archive category with a transcript, and finally deleted. No ticket state is
// persisted anywhere; every operation re-derives what it needs from the live
// channel topology of the guild.
package ticketing

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Service orchestrates the ticket lifecycle against a Platform.
type Service struct {
	cfg Config
	p   Platform
	l   *slog.Logger

	// resolveMu serializes category resolution so that two concurrent
	// resolutions of the same name cannot both miss the lookup and create
	// duplicate categories. Discord has no unique name constraint of its own.
	resolveMu sync.Mutex

	// purgePace spaces out channel deletions during a bulk purge so a purge
	// of a large backlog does not trip the platform rate limiter.
	purgePace *rate.Limiter
}

// NewService creates a ticketing service. The configuration is copied and
// never mutated.
func NewService(cfg Config, p Platform, l *slog.Logger) *Service {
	return &Service{
		cfg:       cfg,
		p:         p,
		l:         l,
		purgePace: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
}

// Config returns the configuration the service was created with.
func (s *Service) Config() Config {
	return s.cfg
}
