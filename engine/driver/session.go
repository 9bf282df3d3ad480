package driver

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/blockfall/engine"
)

// TickStats describes how long gravity ticks took to apply, lock wait included.
type TickStats struct {
	Count         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Session serialises every call into a Controller behind one mutex, so a
// player goroutine and a gravity ticker can share a board.
type Session struct {
	mu    sync.Mutex
	ctrl  *Controller
	ticks TickStats
}

// NewSession wraps ctrl. The caller must not use ctrl directly afterwards.
func NewSession(ctrl *Controller) *Session {
	return &Session{
		ctrl:  ctrl,
		ticks: TickStats{MinDuration: time.Duration(1<<63 - 1)},
	}
}

// Apply handles one event.
func (s *Session) Apply(ev MoveEvent) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Handle(ev)
}

// Tick applies one gravity step and records how long it took.
func (s *Session) Tick() Result {
	start := time.Now()
	res := s.Apply(MoveEvent{Type: EventDown, Source: SourceTick})
	duration := time.Since(start)

	s.mu.Lock()
	s.ticks.Count++
	s.ticks.LastDuration = duration
	s.ticks.TotalDuration += duration
	if duration < s.ticks.MinDuration {
		s.ticks.MinDuration = duration
	}
	if duration > s.ticks.MaxDuration {
		s.ticks.MaxDuration = duration
	}
	s.mu.Unlock()

	return res
}

// Run applies a gravity tick every interval until the context is cancelled
// or the game ends. It returns ctx.Err() on cancellation and nil on game over.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if res := s.Tick(); res.GameOver {
				return nil
			}
		}
	}
}

// NewGame restarts the wrapped controller.
func (s *Session) NewGame() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.NewGame()
}

// GameOver reports whether the current game has ended.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.GameOver()
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Score()
}

// View returns a fresh snapshot of the board.
func (s *Session) View() engine.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.View()
}

// Summary returns the statistics of the current game.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Summary()
}

// TickStats returns the gravity timing collected so far.
func (s *Session) TickStats() TickStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.ticks
	if stats.Count == 0 {
		stats.MinDuration = 0
		return stats
	}
	stats.AvgDuration = stats.TotalDuration / time.Duration(stats.Count)
	return stats
}
