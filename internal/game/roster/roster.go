// Package roster models the ordered participant list supplied to the engine
// before a battle starts. Image decoding belongs to an external collaborator;
// the roster carries only an opaque image reference per participant.
package roster

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxEntries is the hard cap on roster size. Entries beyond the cap are
// ignored, never an error.
const MaxEntries = 500

// Participant is one roster entry handed to the engine.
type Participant struct {
	// ID is the participant's stable unique identifier.
	ID string
	// Name is the display name used in reports.
	Name string
	// ImageRef is the opaque visual reference passed through to snapshots.
	ImageRef string
}

// Cap truncates the roster to MaxEntries, preserving order.
//
// Postcondition: len(result) <= MaxEntries; result is a prefix of parts.
func Cap(parts []Participant) []Participant {
	if len(parts) <= MaxEntries {
		return parts
	}
	return parts[:MaxEntries]
}

// Generate produces n synthetic participants with fresh UUIDs, numbered
// display names, and placeholder image references. Used by the rostergen
// tool and by tests that need bulk rosters.
//
// Precondition: n must be >= 0.
// Postcondition: Returns exactly n participants with unique IDs.
func Generate(n int) []Participant {
	parts := make([]Participant, n)
	for i := range parts {
		id := uuid.New().String()
		parts[i] = Participant{
			ID:       id,
			Name:     fmt.Sprintf("fighter-%03d", i+1),
			ImageRef: fmt.Sprintf("images/%s.png", id),
		}
	}
	return parts
}
