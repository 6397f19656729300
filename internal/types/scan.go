package types

type (
	// Listing is the result of scanning a directory for files that qualify
	// for renaming. Both slices are sorted and hold bare names, not paths.
	Listing struct {
		Dir      string   `json:"dir"`
		Eligible []string `json:"eligible"`
		Skipped  []string `json:"skipped,omitempty"` // regular files the suffix filter rejected
	}
)
