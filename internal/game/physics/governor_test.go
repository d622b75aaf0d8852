package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/openbrawl/arenasim/internal/game/entity"
	"github.com/openbrawl/arenasim/internal/game/physics"
)

func TestGovern_RescalesSlowToMinimum(t *testing.T) {
	e := &entity.Entity{ID: "e", VX: 0.3, VY: 0.4, Health: 100} // speed 0.5
	reg := populated(t, e)

	physics.Govern(reg)
	assert.InDelta(t, physics.MinSpeed, e.Speed(), 1e-9)
	// Direction preserved: 3-4-5 triangle scaled up
	assert.InDelta(t, 0.9, e.VX, 1e-9)
	assert.InDelta(t, 1.2, e.VY, 1e-9)
}

func TestGovern_RescalesFastToMaximum(t *testing.T) {
	e := &entity.Entity{ID: "e", VX: 30, VY: 40, Health: 100} // speed 50
	reg := populated(t, e)

	physics.Govern(reg)
	assert.InDelta(t, physics.MaxSpeed, e.Speed(), 1e-9)
	assert.InDelta(t, 4.8, e.VX, 1e-9)
	assert.InDelta(t, 6.4, e.VY, 1e-9)
}

func TestGovern_LeavesInBandSpeedAlone(t *testing.T) {
	e := &entity.Entity{ID: "e", VX: 3, VY: 4, Health: 100} // speed 5
	reg := populated(t, e)

	physics.Govern(reg)
	assert.Equal(t, 3.0, e.VX)
	assert.Equal(t, 4.0, e.VY)
}

func TestGovern_RestartsStalledEntity(t *testing.T) {
	e := &entity.Entity{ID: "e", VX: 0, VY: 0, Health: 100}
	reg := populated(t, e)

	physics.Govern(reg)
	assert.Equal(t, physics.MinSpeed, e.VX)
	assert.Equal(t, 0.0, e.VY)
}

func TestGovern_SkipsDestroyed(t *testing.T) {
	e := &entity.Entity{ID: "e", VX: 0.1, VY: 0, Destroyed: true}
	reg := populated(t, e)

	physics.Govern(reg)
	assert.Equal(t, 0.1, e.VX)
}

func TestGovern_Property_SpeedAlwaysInBand(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := &entity.Entity{
			ID:     "e",
			VX:     rapid.Float64Range(-100, 100).Draw(rt, "vx"),
			VY:     rapid.Float64Range(-100, 100).Draw(rt, "vy"),
			Health: 100,
		}
		reg := entity.NewRegistry()
		if err := reg.Populate([]*entity.Entity{e}); err != nil {
			rt.Fatal(err)
		}
		physics.Govern(reg)
		speed := math.Hypot(e.VX, e.VY)
		assert.GreaterOrEqual(rt, speed, physics.MinSpeed-1e-9)
		assert.LessOrEqual(rt, speed, physics.MaxSpeed+1e-9)
	})
}
