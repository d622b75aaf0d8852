package match

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/openbrawl/arenasim/internal/game/arena"
	"github.com/openbrawl/arenasim/internal/game/combat"
	"github.com/openbrawl/arenasim/internal/game/entity"
	"github.com/openbrawl/arenasim/internal/game/physics"
	"github.com/openbrawl/arenasim/internal/game/rng"
	"github.com/openbrawl/arenasim/internal/game/roster"
)

// CountdownSeconds is the fixed length of the pre-battle countdown.
const CountdownSeconds = 3

// Spawn speed band. Entities launch with a uniform random speed inside the
// governor's bounds so the first ticks are already in the legal speed range.
const (
	spawnSpeedMin = 2.0
	spawnSpeedMax = 5.0
)

// Controller drives the battle: it owns the registry exclusively, advances
// the fixed tick pipeline (integrate → collide → regen → govern → stats →
// victory check), and runs the phase state machine.
//
// All methods are safe for concurrent use. The whole tick executes under one
// lock, so Snapshot and Standings only ever observe complete-tick state.
type Controller struct {
	mu             sync.Mutex
	logger         *zap.Logger
	src            rng.Source
	ticksPerSecond int

	resolver *combat.Resolver
	regen    *combat.Regenerator
	registry *entity.Registry

	arena         arena.Arena
	phase         Phase
	stats         Statistics
	countdownLeft int64
	winnerID      string
}

// NewController creates a Controller in PhasePreBattle.
//
// Precondition: logger and src must be non-nil; ticksPerSecond must be > 0.
// Postcondition: Returns a Controller with an empty registry, or an error.
func NewController(logger *zap.Logger, src rng.Source, ticksPerSecond int) (*Controller, error) {
	if ticksPerSecond <= 0 {
		return nil, fmt.Errorf("ticks per second must be > 0, got %d", ticksPerSecond)
	}
	rules := combat.RulesForTickRate(ticksPerSecond)
	return &Controller{
		logger:         logger,
		src:            src,
		ticksPerSecond: ticksPerSecond,
		resolver:       combat.NewResolver(rules, src),
		regen:          combat.NewRegenerator(rules),
		registry:       entity.NewRegistry(),
		phase:          PhasePreBattle,
	}, nil
}

// StartBattle initializes a battle from the given roster and enters the
// countdown. The roster is capped at roster.MaxEntries; overflow entries are
// ignored. Entities are created in bulk here and never again mid-battle.
//
// Precondition: the controller must be in PhasePreBattle.
// Postcondition: On success the phase is PhaseCountdown, statistics are
// zeroed, and the registry holds min(len(parts), roster.MaxEntries) entities
// positioned inside the arena. An empty roster is refused and the phase does
// not change.
func (c *Controller) StartBattle(parts []roster.Participant) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhasePreBattle {
		return fmt.Errorf("cannot start battle from phase %s", c.phase)
	}
	parts = roster.Cap(parts)
	if len(parts) == 0 {
		return fmt.Errorf("cannot start battle with an empty roster")
	}

	c.arena = arena.ForRosterSize(len(parts))
	entities := c.spawnEntities(parts)
	if err := c.registry.Populate(entities); err != nil {
		return fmt.Errorf("populating registry: %w", err)
	}

	c.stats = Statistics{}
	c.winnerID = ""
	c.countdownLeft = int64(CountdownSeconds * c.ticksPerSecond)
	c.phase = PhaseCountdown

	c.logger.Info("battle initialized",
		zap.Int("entities", len(entities)),
		zap.Float64("arena_width", c.arena.Width),
		zap.Float64("arena_height", c.arena.Height),
		zap.Int("countdown_seconds", CountdownSeconds),
	)
	return nil
}

// spawnEntities builds the battle entities from roster participants: rolled
// radius, random position fully inside the arena, random launch velocity,
// and a random palette color.
func (c *Controller) spawnEntities(parts []roster.Participant) []*entity.Entity {
	count := len(parts)
	entities := make([]*entity.Entity, count)
	for i, p := range parts {
		r := arena.RollRadius(count, c.src)
		speed := spawnSpeedMin + c.src.Float64()*(spawnSpeedMax-spawnSpeedMin)
		angle := c.src.Float64() * 2 * math.Pi
		entities[i] = &entity.Entity{
			ID:       p.ID,
			Name:     p.Name,
			ImageRef: p.ImageRef,
			X:        r + c.src.Float64()*(c.arena.Width-2*r),
			Y:        r + c.src.Float64()*(c.arena.Height-2*r),
			VX:       speed * math.Cos(angle),
			VY:       speed * math.Sin(angle),
			Radius:   r,
			Health:   entity.MaxHealth,
			Color:    entity.Palette[c.src.Intn(len(entity.Palette))],
		}
	}
	return entities
}

// Tick advances the simulation by one frame and returns the phase after the
// frame. During the countdown only the countdown advances; during battle the
// full pipeline runs; all other phases are inert.
//
// Postcondition: Returns the phase in effect after this frame.
func (c *Controller) Tick() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseCountdown:
		c.countdownLeft--
		if c.countdownLeft <= 0 {
			c.phase = PhaseBattle
			c.logger.Info("battle started",
				zap.Int("entities", c.registry.ActiveCount()),
			)
		}
	case PhaseBattle:
		c.stepBattle()
	}
	return c.phase
}

// stepBattle runs the fixed tick pipeline once. Called with c.mu held.
func (c *Controller) stepBattle() {
	c.stats.BattleTicks++
	tick := c.stats.BattleTicks

	physics.Integrate(c.registry, c.arena)
	c.stats.TotalCollisions += int64(c.resolver.Resolve(c.registry, tick))
	c.regen.Apply(c.registry, tick)
	physics.Govern(c.registry)
	c.stats.EntitiesDestroyed = c.registry.Len() - c.registry.ActiveCount()

	if c.registry.ActiveCount() <= 1 {
		c.phase = PhaseEnded
		if w, ok := c.registry.Survivor(); ok {
			c.winnerID = w.ID
			c.logger.Info("battle ended",
				zap.String("winner_id", w.ID),
				zap.String("winner_name", w.Name),
				zap.Int64("battle_ticks", c.stats.BattleTicks),
				zap.Int64("collisions", c.stats.TotalCollisions),
			)
		} else {
			c.logger.Info("battle ended with no survivor",
				zap.Int64("battle_ticks", c.stats.BattleTicks),
				zap.Int64("collisions", c.stats.TotalCollisions),
			)
		}
	}
}

// Pause suspends ticking. State is frozen, not discarded: Resume continues
// from the exact frozen snapshot.
//
// Precondition: the controller must be in PhaseBattle.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseBattle {
		return fmt.Errorf("cannot pause from phase %s", c.phase)
	}
	c.phase = PhasePaused
	c.logger.Info("battle paused", zap.Int64("battle_ticks", c.stats.BattleTicks))
	return nil
}

// Resume continues a paused battle.
//
// Precondition: the controller must be in PhasePaused.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePaused {
		return fmt.Errorf("cannot resume from phase %s", c.phase)
	}
	c.phase = PhaseBattle
	c.logger.Info("battle resumed", zap.Int64("battle_ticks", c.stats.BattleTicks))
	return nil
}

// Stop aborts the battle from any non-PreBattle phase, discards all entities,
// and zeroes the statistics. This is the only path that clears the registry,
// and the only exit from PhaseEnded.
//
// Precondition: the controller must not already be in PhasePreBattle.
// Postcondition: Phase is PhasePreBattle and the registry is empty.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhasePreBattle {
		return fmt.Errorf("no battle in progress")
	}
	c.registry.Clear()
	c.stats = Statistics{}
	c.winnerID = ""
	c.countdownLeft = 0
	c.phase = PhasePreBattle
	c.logger.Info("battle stopped")
	return nil
}

// Phase returns the current state machine position.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Arena returns the current battle's arena dimensions. Zero before the first
// StartBattle.
func (c *Controller) Arena() arena.Arena {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.arena
}

// Stats returns a copy of the aggregate statistics.
func (c *Controller) Stats() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Snapshot returns a deep-copied, complete-tick view of the battle for
// external consumers.
//
// Postcondition: Mutating the returned value never affects battle state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:    c.phase,
		Stats:    c.stats,
		WinnerID: c.winnerID,
	}
	if c.phase == PhaseCountdown {
		tps := int64(c.ticksPerSecond)
		snap.CountdownRemaining = int((c.countdownLeft + tps - 1) / tps)
	}
	for _, e := range c.registry.All() {
		if e.Active() {
			snap.Active = append(snap.Active, EntityView{
				ID:          e.ID,
				Name:        e.Name,
				X:           e.X,
				Y:           e.Y,
				Radius:      e.Radius,
				HealthRatio: e.HealthRatio(),
				HasBarrier:  e.HasBarrier,
				Color:       e.Color,
				ImageRef:    e.ImageRef,
			})
		} else {
			snap.Destroyed = append(snap.Destroyed, DestroyedView{
				ID:          e.ID,
				Name:        e.Name,
				TotalDamage: e.TotalDamage,
			})
		}
	}
	return snap
}

// Standings returns the final report rows: survivors first, then by credited
// damage descending. Meaningful at any time but intended for PhaseEnded.
func (c *Controller) Standings() []Standing {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]Standing, 0, c.registry.Len())
	for _, e := range c.registry.All() {
		rows = append(rows, Standing{
			ID:          e.ID,
			Name:        e.Name,
			Survived:    e.Active(),
			Health:      e.Health,
			TotalDamage: e.TotalDamage,
		})
	}
	return rankStandings(rows)
}

// Winner returns the surviving entity's view once the battle has ended.
//
// Postcondition: Returns (view, true) iff the phase is PhaseEnded and a
// single survivor exists.
func (c *Controller) Winner() (EntityView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseEnded || c.winnerID == "" {
		return EntityView{}, false
	}
	w, ok := c.registry.Get(c.winnerID)
	if !ok {
		return EntityView{}, false
	}
	return EntityView{
		ID:          w.ID,
		Name:        w.Name,
		X:           w.X,
		Y:           w.Y,
		Radius:      w.Radius,
		HealthRatio: w.HealthRatio(),
		HasBarrier:  w.HasBarrier,
		Color:       w.Color,
		ImageRef:    w.ImageRef,
	}, true
}
