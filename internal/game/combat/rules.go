// Package combat implements the collision damage model of the arena
// simulation: pairwise overlap resolution, damage rolls, the one-shot
// barrier, combo crediting, and post-hit regeneration.
package combat

// Damage model constants.
const (
	// FlatDamage is the damage floor added before the speed contribution.
	FlatDamage = 5
	// SpeedDamageFactor scales relative collision speed into damage.
	SpeedDamageFactor = 10
	// DamageRollSpan is the exclusive upper bound of the per-hit random
	// offset: each side adds Intn(DamageRollSpan), i.e. 0..10 inclusive.
	DamageRollSpan = 11
	// MaxDamagePerHit caps any single rolled hit.
	MaxDamagePerHit = 35

	// ComboMultiplierStep is the per-stack bonus on credited damage.
	ComboMultiplierStep = 0.25
	// MaxComboMultiplier caps the credited-damage bonus.
	MaxComboMultiplier = 1.5

	// ExchangeGain is the scale applied to both velocities on the swap. The
	// 20% gain is deliberately non-physical: it keeps battles energetic and
	// guarantees the simulation never settles into a stall.
	ExchangeGain = 1.2
)

// Time windows of the combat model in seconds of simulated time. Rules
// converts them to ticks for a given tick rate.
const (
	comboWindowSeconds = 2
	regenDelaySeconds  = 3
	regenPeriodSeconds = 5
)

// Rules holds the tick-domain timing constants derived from the configured
// tick rate. Keeping these in ticks rather than wall clock makes every
// timing decision reproducible under test.
type Rules struct {
	// ComboWindowTicks is the maximum gap between two hits on the same
	// entity for the second to extend its combo streak.
	ComboWindowTicks int64
	// RegenDelayTicks is the damage-free span required before an entity
	// becomes eligible to regenerate.
	RegenDelayTicks int64
	// RegenPeriodTicks is the cadence of the global regeneration pass: one
	// hit point per eligible entity each period.
	RegenPeriodTicks int64
}

// RulesForTickRate converts the model's second-domain windows into ticks.
//
// Precondition: ticksPerSecond must be > 0.
// Postcondition: All returned fields are > 0.
func RulesForTickRate(ticksPerSecond int) Rules {
	tps := int64(ticksPerSecond)
	return Rules{
		ComboWindowTicks: comboWindowSeconds * tps,
		RegenDelayTicks:  regenDelaySeconds * tps,
		RegenPeriodTicks: regenPeriodSeconds * tps,
	}
}

// ComboMultiplier returns the credited-damage multiplier for a receiver
// combo streak of the given length.
//
// Precondition: comboCount must be >= 1.
// Postcondition: Returns a value in [1.0, MaxComboMultiplier].
func ComboMultiplier(comboCount int) float64 {
	m := 1 + float64(comboCount-1)*ComboMultiplierStep
	if m > MaxComboMultiplier {
		return MaxComboMultiplier
	}
	return m
}
