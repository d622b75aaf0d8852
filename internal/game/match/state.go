// Package match orchestrates a battle: the phase state machine, the fixed
// tick pipeline, aggregate statistics, and the snapshot/standings views
// consumed by external renderers and reports.
package match

// Phase is the battle state machine position.
//
// Transitions: PreBattle → Countdown → Battle ⇄ Paused → Ended.
// Stop from any non-PreBattle phase returns to PreBattle, discarding all
// entities; it is the only transition that clears the registry. Ended has no
// exit other than Stop.
type Phase int

const (
	PhasePreBattle Phase = iota
	PhaseCountdown
	PhaseBattle
	PhasePaused
	PhaseEnded
)

// String returns a human-readable phase label.
func (p Phase) String() string {
	switch p {
	case PhasePreBattle:
		return "pre_battle"
	case PhaseCountdown:
		return "countdown"
	case PhaseBattle:
		return "battle"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Statistics holds the aggregate counters for one battle. All counters reset
// to zero when a battle starts and when it is stopped.
type Statistics struct {
	// TotalCollisions is the monotonic count of resolved collisions.
	TotalCollisions int64
	// EntitiesDestroyed is recomputed each tick from the registry.
	EntitiesDestroyed int
	// BattleTicks counts simulated battle frames. Countdown frames are not
	// battle time.
	BattleTicks int64
}
