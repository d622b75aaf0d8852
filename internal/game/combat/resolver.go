package combat

import (
	"math"

	"github.com/openbrawl/arenasim/internal/game/entity"
	"github.com/openbrawl/arenasim/internal/game/rng"
)

// Resolver detects and resolves pairwise collisions between active entities.
// Collision detection carries no state across ticks: every tick is an
// independent sweep over the current active set.
type Resolver struct {
	rules Rules
	src   rng.Source
}

// NewResolver creates a Resolver using the given rules and randomness source.
//
// Precondition: src must be non-nil.
func NewResolver(rules Rules, src rng.Source) *Resolver {
	return &Resolver{rules: rules, src: src}
}

// Resolve sweeps every unordered pair (i, j) with i < j over the active set
// captured at the start of the tick and resolves each overlap in index
// order. Mutations are applied in place and stay visible to later pairs in
// the same tick; a pair is skipped when an earlier pair already destroyed
// one of its members.
//
// Precondition: tick must be >= 1 and strictly increasing across calls.
// Postcondition: Returns the number of collisions resolved this tick.
func (r *Resolver) Resolve(reg *entity.Registry, tick int64) int {
	idx := reg.ActiveIndices()
	collisions := 0
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			ei := reg.At(idx[a])
			ej := reg.At(idx[b])
			if ei.Destroyed || ej.Destroyed {
				continue
			}
			dx := ej.X - ei.X
			dy := ej.Y - ei.Y
			dist := math.Hypot(dx, dy)
			if dist >= ei.Radius+ej.Radius {
				continue
			}
			collisions++
			r.resolvePair(ei, ej, dist, dx, dy, tick)
		}
	}
	return collisions
}

// resolvePair applies the full collision procedure to one overlapping pair:
// symmetric damage rolls, barrier interception, combo crediting, barrier
// arming, destruction, positional separation, and the velocity exchange.
// Both damage rolls are drawn before either is applied, so the exchange is
// simultaneous: an entity destroyed by this collision still lands its own
// outgoing hit.
func (r *Resolver) resolvePair(ei, ej *entity.Entity, dist, dx, dy float64, tick int64) {
	collisionSpeed := math.Hypot(ej.VX-ei.VX, ej.VY-ei.VY)
	base := int(math.Floor(FlatDamage + collisionSpeed*SpeedDamageFactor))

	dmgToJ := r.rollDamage(base)
	dmgToI := r.rollDamage(base)
	r.applyHit(ei, ej, dmgToJ, tick)
	r.applyHit(ej, ei, dmgToI, tick)

	separate(ei, ej, dist, dx, dy)
	exchangeVelocities(ei, ej)
}

// rollDamage draws one side's outgoing damage: base plus an independent
// uniform offset in [0, DamageRollSpan), capped at MaxDamagePerHit.
//
// Postcondition: Returns a value in [0, MaxDamagePerHit].
func (r *Resolver) rollDamage(base int) int {
	dmg := base + r.src.Intn(DamageRollSpan)
	if dmg > MaxDamagePerHit {
		dmg = MaxDamagePerHit
	}
	return dmg
}

// applyHit lands one directed hit of dmg from attacker on receiver.
//
// An armed barrier is consumed and absorbs the hit completely: no health
// loss, no combo or damage-tick update, no credit to the attacker. Otherwise
// the receiver's combo window is evaluated against its previous damage tick
// BEFORE the tick is overwritten, health is reduced (flooring at zero, which
// destroys), the attacker is credited dmg scaled by the receiver's combo
// multiplier, and a receiver landing at exactly 1 HP arms its one-shot
// barrier if it never armed before.
func (r *Resolver) applyHit(attacker, receiver *entity.Entity, dmg int, tick int64) {
	if receiver.HasBarrier {
		receiver.HasBarrier = false
		return
	}

	if receiver.LastDamageTick > 0 && tick-receiver.LastDamageTick <= r.rules.ComboWindowTicks {
		receiver.ComboCount++
	} else {
		receiver.ComboCount = 1
	}
	receiver.LastDamageTick = tick
	receiver.ApplyDamage(dmg)

	attacker.TotalDamage += float64(dmg) * ComboMultiplier(receiver.ComboCount)

	// Second wind: only an exact landing on 1 HP arms the shield.
	if receiver.Health == 1 && !receiver.BarrierUsed {
		receiver.HasBarrier = true
		receiver.BarrierUsed = true
	}
}

// separate pushes the two centers apart along the collision normal by half
// the overlap each, so the pair never stays interpenetrated. Perfectly
// coincident centers have no normal; the unit x axis is the deterministic
// fallback so no NaN can propagate.
func separate(ei, ej *entity.Entity, dist, dx, dy float64) {
	overlap := ei.Radius + ej.Radius - dist
	nx, ny := 1.0, 0.0
	if dist > 0 {
		nx = dx / dist
		ny = dy / dist
	}
	half := overlap / 2
	ei.X -= nx * half
	ei.Y -= ny * half
	ej.X += nx * half
	ej.Y += ny * half
}

// exchangeVelocities swaps the pair's velocities, scaling both by
// ExchangeGain. The speed governor re-bounds the result on the same tick.
func exchangeVelocities(ei, ej *entity.Entity) {
	ei.VX, ej.VX = ej.VX*ExchangeGain, ei.VX*ExchangeGain
	ei.VY, ej.VY = ej.VY*ExchangeGain, ei.VY*ExchangeGain
}
