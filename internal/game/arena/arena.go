// Package arena defines the bounded battlefield rectangle and the sizing
// policies that scale the arena and entity radii to the roster size.
package arena

import "github.com/openbrawl/arenasim/internal/game/rng"

// Arena is the battle's bounding rectangle. Dimensions are fixed for the
// duration of one battle.
type Arena struct {
	Width  float64
	Height float64
}

// RadiusJitter is the maximum uniform random offset added to the base radius.
const RadiusJitter = 20.0

// ForRosterSize returns the arena dimensions for a roster of the given size.
//
// Postcondition: Returns one of the four fixed tiers; larger rosters get
// larger arenas.
func ForRosterSize(count int) Arena {
	switch {
	case count <= 50:
		return Arena{Width: 1200, Height: 800}
	case count <= 150:
		return Arena{Width: 1600, Height: 1000}
	case count <= 300:
		return Arena{Width: 1920, Height: 1200}
	default:
		return Arena{Width: 2560, Height: 1440}
	}
}

// BaseRadius returns the entity base radius for a roster of the given size.
//
// Postcondition: Returns one of 60, 50, 40, 35; larger rosters get smaller
// entities.
func BaseRadius(count int) float64 {
	switch {
	case count <= 100:
		return 60
	case count <= 250:
		return 50
	case count <= 400:
		return 40
	default:
		return 35
	}
}

// RollRadius returns the base radius for count plus a uniform jitter in
// [0, RadiusJitter) drawn from src.
//
// Precondition: src must be non-nil.
// Postcondition: BaseRadius(count) <= result < BaseRadius(count)+RadiusJitter.
func RollRadius(count int, src rng.Source) float64 {
	return BaseRadius(count) + src.Float64()*RadiusJitter
}
