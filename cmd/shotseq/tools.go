package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ScanInput contains parameters for scanning the target directory.
	ScanInput struct{}

	// ScanOutput lists the files that qualify for renaming and the ones the
	// suffix filter skipped.
	ScanOutput struct {
		Dir      string   `json:"dir"`
		Eligible []string `json:"eligible"`
		Skipped  []string `json:"skipped,omitempty"`
		Count    int      `json:"count"`
	}

	// PreviewInput contains parameters for previewing the rename plan.
	PreviewInput struct{}

	// PreviewEntry is one row of the rename plan.
	PreviewEntry struct {
		Original string `json:"original"`
		Final    string `json:"final"`
		Index    int    `json:"index"`
	}

	// PreviewOutput contains the ordered rename plan.
	PreviewOutput struct {
		Dir     string         `json:"dir"`
		Entries []PreviewEntry `json:"entries"`
	}

	// RenameInput contains parameters for executing the batch rename.
	RenameInput struct {
		Confirm string `json:"confirm,omitempty" jsonschema:"Must be set to 'yes' to rename files (not needed for dry runs)"`
		Atomic  bool   `json:"atomic,omitempty" jsonschema:"Roll the whole batch back if any file fails (default: false)"`
		DryRun  bool   `json:"dryRun,omitempty" jsonschema:"Report the plan without renaming anything (default: false)"`
	}

	// RenameResult is the outcome for a single file.
	RenameResult struct {
		Original string `json:"original"`
		Final    string `json:"final,omitempty"`
		Status   string `json:"status"`
		Message  string `json:"message,omitempty"`
	}

	// RenameOutput contains the batch report.
	RenameOutput struct {
		Success    bool           `json:"success"`
		Dir        string         `json:"dir"`
		Eligible   int            `json:"eligible"`
		Renamed    int            `json:"renamed"`
		Failed     int            `json:"failed"`
		RolledBack bool           `json:"rolledBack,omitempty"`
		ElapsedMS  int64          `json:"elapsedMs"`
		Results    []RenameResult `json:"results"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "List the files in the target directory that qualify for sequential renaming, plus the files the suffix filter skips. Read-only.",
	}, handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Build the rename plan without touching any file: every eligible name paired with the sequential name it would receive, in final numbering order.",
	}, handlePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename",
		Description: "Execute the two-phase batch rename. Requires confirm='yes'. Set atomic=true to roll everything back if any file fails, or dryRun=true to only report the plan.",
	}, handleRename)
}
