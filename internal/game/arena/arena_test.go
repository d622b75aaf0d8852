package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/openbrawl/arenasim/internal/game/arena"
	"github.com/openbrawl/arenasim/internal/game/rng"
)

func TestForRosterSize_Tiers(t *testing.T) {
	tests := []struct {
		count  int
		width  float64
		height float64
	}{
		{1, 1200, 800},
		{50, 1200, 800},   // boundary of smallest tier
		{51, 1600, 1000},
		{150, 1600, 1000}, // boundary
		{151, 1920, 1200},
		{300, 1920, 1200}, // boundary
		{301, 2560, 1440},
		{500, 2560, 1440},
	}
	for _, tc := range tests {
		a := arena.ForRosterSize(tc.count)
		assert.Equal(t, tc.width, a.Width, "count=%d", tc.count)
		assert.Equal(t, tc.height, a.Height, "count=%d", tc.count)
	}
}

func TestBaseRadius_Tiers(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{1, 60}, {100, 60},
		{101, 50}, {250, 50},
		{251, 40}, {400, 40},
		{401, 35}, {500, 35},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, arena.BaseRadius(tc.count), "count=%d", tc.count)
	}
}

func TestRollRadius_AddsJitter(t *testing.T) {
	src := rng.NewSeededSource(1)
	r := arena.RollRadius(10, src)
	assert.GreaterOrEqual(t, r, 60.0)
	assert.Less(t, r, 60.0+arena.RadiusJitter)
}

func TestForRosterSize_Property_LargerRostersNeverShrinkArena(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(1, 600).Draw(rt, "a")
		b := rapid.IntRange(1, 600).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}
		small := arena.ForRosterSize(a)
		large := arena.ForRosterSize(b)
		assert.LessOrEqual(rt, small.Width, large.Width)
		assert.LessOrEqual(rt, small.Height, large.Height)
	})
}

func TestRollRadius_Property_StaysInJitterBand(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 600).Draw(rt, "count")
		seed := rapid.Int64().Draw(rt, "seed")
		r := arena.RollRadius(count, rng.NewSeededSource(seed))
		base := arena.BaseRadius(count)
		assert.GreaterOrEqual(rt, r, base)
		assert.Less(rt, r, base+arena.RadiusJitter)
	})
}
