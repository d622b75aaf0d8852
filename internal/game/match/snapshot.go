package match

import "sort"

// EntityView is the per-entity render data exposed for active entities.
type EntityView struct {
	ID          string
	Name        string
	X, Y        float64
	Radius      float64
	HealthRatio float64
	HasBarrier  bool
	Color       string
	ImageRef    string
}

// DestroyedView is the minimal record kept visible for destroyed entities.
type DestroyedView struct {
	ID          string
	Name        string
	TotalDamage float64
}

// Snapshot is a complete-tick view of the battle. It is a deep copy: holding
// one never observes later mutations.
type Snapshot struct {
	Phase Phase
	// CountdownRemaining is the whole seconds left in the countdown, zero
	// outside PhaseCountdown.
	CountdownRemaining int
	Active             []EntityView
	Destroyed          []DestroyedView
	Stats              Statistics
	// WinnerID is set once the battle has ended with a single survivor.
	WinnerID string
}

// Standing is one row of the final report.
type Standing struct {
	Rank        int
	ID          string
	Name        string
	Survived    bool
	Health      int
	TotalDamage float64
}

// rankStandings orders rows: survivors before destroyed, then by credited
// damage descending, ties broken by name for a stable report.
func rankStandings(rows []Standing) []Standing {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Survived != rows[j].Survived {
			return rows[i].Survived
		}
		if rows[i].TotalDamage != rows[j].TotalDamage {
			return rows[i].TotalDamage > rows[j].TotalDamage
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
