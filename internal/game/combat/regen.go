package combat

import "github.com/openbrawl/arenasim/internal/game/entity"

// Regenerator heals entities that have gone unhurt long enough. The cadence
// is counted in simulation ticks against the global tick counter, never wall
// clock, so regeneration is deterministic and testable.
type Regenerator struct {
	rules Rules
}

// NewRegenerator creates a Regenerator with the given rules.
func NewRegenerator(rules Rules) *Regenerator {
	return &Regenerator{rules: rules}
}

// Apply runs one regeneration pass. On every RegenPeriodTicks boundary, each
// active entity that is injured (0 < Health < MaxHealth) and has not taken
// damage for at least RegenDelayTicks heals one hit point. Destroyed
// entities never regenerate.
//
// Precondition: tick must be >= 1.
// Postcondition: No entity's Health exceeds MaxHealth.
func (g *Regenerator) Apply(reg *entity.Registry, tick int64) {
	if tick%g.rules.RegenPeriodTicks != 0 {
		return
	}
	for _, i := range reg.ActiveIndices() {
		e := reg.At(i)
		if e.Health >= entity.MaxHealth {
			continue
		}
		if tick-e.LastDamageTick < g.rules.RegenDelayTicks {
			continue
		}
		e.Heal(1)
	}
}
