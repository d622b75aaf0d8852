package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/openbrawl/arenasim/internal/game/arena"
	"github.com/openbrawl/arenasim/internal/game/entity"
	"github.com/openbrawl/arenasim/internal/game/physics"
)

func populated(t *testing.T, es ...*entity.Entity) *entity.Registry {
	t.Helper()
	reg := entity.NewRegistry()
	require.NoError(t, reg.Populate(es))
	return reg
}

func TestIntegrate_AdvancesPosition(t *testing.T) {
	e := &entity.Entity{ID: "e", X: 100, Y: 200, VX: 3, VY: -2, Radius: 10, Health: 100}
	reg := populated(t, e)

	physics.Integrate(reg, arena.Arena{Width: 1200, Height: 800})
	assert.Equal(t, 103.0, e.X)
	assert.Equal(t, 198.0, e.Y)
}

func TestIntegrate_LeftWallBounce(t *testing.T) {
	e := &entity.Entity{ID: "e", X: 12, Y: 400, VX: -5, VY: 0, Radius: 10, Health: 100}
	reg := populated(t, e)

	physics.Integrate(reg, arena.Arena{Width: 1200, Height: 800})
	// x+vx = 7; leading edge 7-10 < 0 → clamp to radius, reflect with 5% loss
	assert.Equal(t, 10.0, e.X)
	assert.InDelta(t, 5*physics.Restitution, e.VX, 1e-9)
}

func TestIntegrate_RightWallBounce(t *testing.T) {
	e := &entity.Entity{ID: "e", X: 1195, Y: 400, VX: 8, VY: 0, Radius: 10, Health: 100}
	reg := populated(t, e)

	physics.Integrate(reg, arena.Arena{Width: 1200, Height: 800})
	assert.Equal(t, 1190.0, e.X)
	assert.InDelta(t, -8*physics.Restitution, e.VX, 1e-9)
}

func TestIntegrate_CornerBounceFlipsBothAxes(t *testing.T) {
	e := &entity.Entity{ID: "e", X: 12, Y: 12, VX: -6, VY: -6, Radius: 10, Health: 100}
	reg := populated(t, e)

	physics.Integrate(reg, arena.Arena{Width: 1200, Height: 800})
	assert.Equal(t, 10.0, e.X)
	assert.Equal(t, 10.0, e.Y)
	assert.InDelta(t, 6*physics.Restitution, e.VX, 1e-9)
	assert.InDelta(t, 6*physics.Restitution, e.VY, 1e-9)
}

func TestIntegrate_SkipsDestroyed(t *testing.T) {
	e := &entity.Entity{ID: "e", X: 100, Y: 100, VX: 5, VY: 5, Radius: 10, Destroyed: true}
	reg := populated(t, e)

	physics.Integrate(reg, arena.Arena{Width: 1200, Height: 800})
	assert.Equal(t, 100.0, e.X)
	assert.Equal(t, 100.0, e.Y)
}

func TestIntegrate_Property_NeverEscapesBounds(t *testing.T) {
	a := arena.Arena{Width: 1200, Height: 800}
	rapid.Check(t, func(rt *rapid.T) {
		e := &entity.Entity{
			ID:     "e",
			X:      rapid.Float64Range(20, a.Width-20).Draw(rt, "x"),
			Y:      rapid.Float64Range(20, a.Height-20).Draw(rt, "y"),
			VX:     rapid.Float64Range(-physics.MaxSpeed, physics.MaxSpeed).Draw(rt, "vx"),
			VY:     rapid.Float64Range(-physics.MaxSpeed, physics.MaxSpeed).Draw(rt, "vy"),
			Radius: rapid.Float64Range(20, 80).Draw(rt, "r"),
			Health: 100,
		}
		reg := entity.NewRegistry()
		if err := reg.Populate([]*entity.Entity{e}); err != nil {
			rt.Fatal(err)
		}
		for i := 0; i < 500; i++ {
			physics.Integrate(reg, a)
			assert.GreaterOrEqual(rt, e.X, e.Radius)
			assert.LessOrEqual(rt, e.X, a.Width-e.Radius)
			assert.GreaterOrEqual(rt, e.Y, e.Radius)
			assert.LessOrEqual(rt, e.Y, a.Height-e.Radius)
		}
	})
}
