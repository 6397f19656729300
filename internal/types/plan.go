// Package types defines the data structures shared by the renamer core, the
// CLI, and the MCP tool surface.
package types

type (
	// PlanEntry describes one file's place in a rename batch.
	PlanEntry struct {
		Original string `json:"original"` // name found at scan time
		Staged   string `json:"staged"`   // temporary name used during the staging phase
		Final    string `json:"final"`    // canonical sequential name
		Index    int    `json:"index"`    // 1-based position in sorted order
	}

	// Plan is the complete rename plan for one batch. Entries follow the
	// lexicographic sort of the original names and are indexed contiguously
	// from 1.
	Plan struct {
		Dir     string      `json:"dir"`
		Entries []PlanEntry `json:"entries"`
	}
)
