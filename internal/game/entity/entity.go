// Package entity defines the combat participants of the arena simulation and
// the registry that owns them for the duration of one battle.
package entity

import "math"

// MaxHealth is the health every entity starts a battle with.
const MaxHealth = 100

// Palette is the fixed set of cosmetic color identifiers. Colors have no
// behavioral effect; they are passed through to the render sink.
var Palette = []string{"crimson", "azure", "emerald", "amber", "violet", "coral"}

// Entity is one combat participant: a circle with health, velocity, and a
// one-shot defensive barrier.
type Entity struct {
	// ID uniquely identifies this entity. Assigned at creation, never reused.
	ID string
	// Name is the participant's display name, copied from the roster.
	Name string
	// ImageRef is an opaque visual reference for the render sink. The engine
	// never interprets it.
	ImageRef string

	// X, Y is the center position in arena coordinates.
	X, Y float64
	// VX, VY is the velocity in units per tick.
	VX, VY float64
	// Radius is fixed at creation and immutable for the whole battle.
	Radius float64

	// Health is the current hit points in [0, MaxHealth].
	Health int
	// Destroyed is true iff Health reached zero. Destroyed entities are inert:
	// excluded from physics, collisions, and regeneration, but kept in the
	// registry for final reporting.
	Destroyed bool

	// HasBarrier is true while the one-shot shield is armed.
	HasBarrier bool
	// BarrierUsed latches true the first time the barrier arms, so it can
	// never arm a second time.
	BarrierUsed bool

	// LastDamageTick is the simulation tick of the most recent health loss.
	LastDamageTick int64
	// ComboCount is the consecutive rapid-hit streak against this entity.
	ComboCount int
	// TotalDamage is the combo-multiplied damage this entity has been
	// credited for dealing to others. Used to rank survivors.
	TotalDamage float64

	// Color is the cosmetic palette identifier.
	Color string
}

// Active reports whether this entity still participates in the simulation.
//
// Postcondition: Returns true iff the entity is not destroyed.
func (e *Entity) Active() bool { return !e.Destroyed }

// Speed returns the magnitude of the entity's velocity.
//
// Postcondition: Returns >= 0.
func (e *Entity) Speed() float64 { return math.Hypot(e.VX, e.VY) }

// HealthRatio returns Health as a fraction of MaxHealth.
//
// Postcondition: Returns a value in [0, 1].
func (e *Entity) HealthRatio() float64 {
	return float64(e.Health) / float64(MaxHealth)
}

// ApplyDamage reduces Health by amount, flooring at zero, and marks the
// entity destroyed when health reaches zero. A destroyed entity always drops
// its barrier so HasBarrier never survives destruction.
//
// Precondition: amount must be >= 0.
// Postcondition: 0 <= Health <= MaxHealth; Destroyed iff Health == 0.
func (e *Entity) ApplyDamage(amount int) {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Destroyed = true
		e.HasBarrier = false
	}
}

// Heal raises Health by amount, capped at MaxHealth. Destroyed entities are
// never healed.
//
// Precondition: amount must be >= 0.
// Postcondition: Health unchanged when Destroyed; otherwise Health <= MaxHealth.
func (e *Entity) Heal(amount int) {
	if e.Destroyed {
		return
	}
	e.Health += amount
	if e.Health > MaxHealth {
		e.Health = MaxHealth
	}
}
