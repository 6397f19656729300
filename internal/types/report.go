package types

// FileStatus classifies the terminal state of one file after a batch run.
type FileStatus string

const (
	// StatusRenamed means the file now bears its sequential name.
	StatusRenamed FileStatus = "renamed"
	// StatusPlanned means a dry run matched the file but nothing was touched.
	StatusPlanned FileStatus = "planned"
	// StatusStagingFailed means the file never left its original name.
	StatusStagingFailed FileStatus = "staging_failed"
	// StatusFinalizeFailed means the file is stranded under its staged name.
	StatusFinalizeFailed FileStatus = "finalize_failed"
	// StatusRolledBack means an atomic batch restored the original name.
	StatusRolledBack FileStatus = "rolled_back"
	// StatusRollbackFailed means an atomic undo could not restore the file
	// and it remains under its staged name.
	StatusRollbackFailed FileStatus = "rollback_failed"
)

type (
	// FileResult records the outcome for a single file.
	FileResult struct {
		Original string     `json:"original"`
		Final    string     `json:"final,omitempty"`
		Index    int        `json:"index"`
		Status   FileStatus `json:"status"`
		Message  string     `json:"message,omitempty"`
	}

	// Report summarizes one batch run.
	Report struct {
		Dir        string       `json:"dir"`
		Eligible   int          `json:"eligible"`
		Renamed    int          `json:"renamed"`
		Failed     int          `json:"failed"`
		DryRun     bool         `json:"dryRun,omitempty"`
		RolledBack bool         `json:"rolledBack,omitempty"`
		ElapsedMS  int64        `json:"elapsedMs"` // wall time of the run in milliseconds
		Results    []FileResult `json:"results"`
	}
)
