package server

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/openbrawl/arenasim/internal/game/match"
)

// SimService drives a match.Controller with a fixed-rate frame clock. It is
// the only writer to the controller while running; renderers and reports
// read complete-tick snapshots on the side.
type SimService struct {
	logger         *zap.Logger
	ctrl           *match.Controller
	ticksPerSecond int
	maxTicks       int64

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewSimService creates a SimService ticking ctrl at ticksPerSecond frames
// per second. A positive maxTicks aborts battles that run too long; zero
// disables the limit.
//
// Precondition: logger and ctrl must be non-nil; ticksPerSecond must be > 0.
func NewSimService(logger *zap.Logger, ctrl *match.Controller, ticksPerSecond int, maxTicks int64) *SimService {
	return &SimService{
		logger:         logger,
		ctrl:           ctrl,
		ticksPerSecond: ticksPerSecond,
		maxTicks:       maxTicks,
		stopCh:         make(chan struct{}),
	}
}

// Start runs the tick loop until the battle ends, Stop is called, or the
// tick limit is exceeded.
//
// Postcondition: Returns nil on a completed or stopped battle; returns an
// error only when maxTicks is exceeded.
func (s *SimService) Start() error {
	interval := time.Second / time.Duration(s.ticksPerSecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-s.stopCh:
			s.logger.Info("simulation stopped",
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		case <-ticker.C:
			phase := s.ctrl.Tick()
			if phase == match.PhaseEnded {
				s.logger.Info("simulation finished",
					zap.Duration("elapsed", time.Since(start)),
				)
				return nil
			}
			if s.maxTicks > 0 && s.ctrl.Stats().BattleTicks >= s.maxTicks {
				return fmt.Errorf("battle exceeded %d ticks without ending", s.maxTicks)
			}
		}
	}
}

// Stop ends the tick loop. Safe to call multiple times. Battle state is left
// intact for final reporting; clearing it is the controller's Stop.
func (s *SimService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
