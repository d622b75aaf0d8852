package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/openbrawl/arenasim/internal/game/entity"
)

func TestEntity_ApplyDamage(t *testing.T) {
	e := entity.Entity{ID: "e1", Health: entity.MaxHealth}
	e.ApplyDamage(30)
	assert.Equal(t, 70, e.Health)
	assert.True(t, e.Active())

	e.ApplyDamage(80)
	assert.Equal(t, 0, e.Health) // floors at 0
	assert.True(t, e.Destroyed)
	assert.False(t, e.Active())
}

func TestEntity_ApplyDamage_DestructionDropsBarrier(t *testing.T) {
	e := entity.Entity{ID: "e1", Health: 1, HasBarrier: true, BarrierUsed: true}
	// A lethal hit that bypassed the barrier check must not leave a barrier
	// on a destroyed entity.
	e.HasBarrier = true
	e.ApplyDamage(5)
	assert.True(t, e.Destroyed)
	assert.False(t, e.HasBarrier)
	assert.True(t, e.BarrierUsed)
}

func TestEntity_Heal(t *testing.T) {
	e := entity.Entity{ID: "e1", Health: 98}
	e.Heal(1)
	assert.Equal(t, 99, e.Health)
	e.Heal(5)
	assert.Equal(t, entity.MaxHealth, e.Health) // caps at max
}

func TestEntity_Heal_DestroyedStaysDead(t *testing.T) {
	e := entity.Entity{ID: "e1", Health: 0, Destroyed: true}
	e.Heal(10)
	assert.Equal(t, 0, e.Health)
	assert.True(t, e.Destroyed)
}

func TestEntity_HealthRatio(t *testing.T) {
	e := entity.Entity{Health: 50}
	assert.InDelta(t, 0.5, e.HealthRatio(), 1e-9)
}

func TestEntity_Property_HealthAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := entity.Entity{ID: "x", Health: entity.MaxHealth}
		ops := rapid.SliceOfN(rapid.IntRange(0, 60), 1, 50).Draw(rt, "ops")
		heal := rapid.SliceOfN(rapid.Bool(), len(ops), len(ops)).Draw(rt, "heal")
		for i, amount := range ops {
			if heal[i] {
				e.Heal(amount)
			} else {
				e.ApplyDamage(amount)
			}
			assert.GreaterOrEqual(rt, e.Health, 0)
			assert.LessOrEqual(rt, e.Health, entity.MaxHealth)
			assert.Equal(rt, e.Health == 0, e.Destroyed)
		}
	})
}
