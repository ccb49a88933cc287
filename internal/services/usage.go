package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ports"
)

// UsageService buffers copied bindings and writes them after the UI exits.
// A nil repository disables history.
type UsageService struct {
	mu      sync.Mutex
	now     func() time.Time
	pending []ports.UsageEvent
	repo    ports.UsageRepository
}

// NewUsageService creates a new UsageService
func NewUsageService(repo ports.UsageRepository) *UsageService {
	return &UsageService{
		now:  time.Now,
		repo: repo,
	}
}

// Enabled reports whether history is recorded
func (s *UsageService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Track buffers one use of a binding
func (s *UsageService) Track(b domain.Keybinding) {
	if !s.Enabled() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, ports.UsageEvent{
		Action: b.Action(),
		Combo:  b.Combo(),
		UsedAt: s.now(),
	})
}

// Pending returns the number of buffered events
func (s *UsageService) Pending() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush writes buffered events to the repository
func (s *UsageService) Flush(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	s.mu.Lock()
	events := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(events) == 0 {
		return nil
	}

	if err := s.repo.Record(ctx, events); err != nil {
		// keep events for a later retry
		s.mu.Lock()
		s.pending = append(events, s.pending...)
		s.mu.Unlock()
		return fmt.Errorf("failed to record usage: %w", err)
	}

	logging.Logger.Debug("Usage history flushed", "events", len(events))
	return nil
}

// TopUsed returns the most used bindings
func (s *UsageService) TopUsed(ctx context.Context, limit int) ([]ports.UsageStat, error) {
	if !s.Enabled() {
		return nil, nil
	}
	stats, err := s.repo.TopUsed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage history: %w", err)
	}
	return stats, nil
}
