package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/shotseq/shotseq/internal/logging"
	"github.com/shotseq/shotseq/internal/renamer"
)

// batch is the renamer the MCP handlers operate on. It is bound to a single
// target directory for the lifetime of the server.
var batch *renamer.Service

func handleScan(ctx context.Context, req *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
	logging.Debug("tool invoked", zap.String("tool", "scan"))

	listing, err := batch.Scan()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ScanOutput{}, err
	}

	return nil, ScanOutput{
		Dir:      listing.Dir,
		Eligible: listing.Eligible,
		Skipped:  listing.Skipped,
		Count:    len(listing.Eligible),
	}, nil
}

func handlePreview(ctx context.Context, req *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
	logging.Debug("tool invoked", zap.String("tool", "preview"))

	plan, err := batch.Preview()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, PreviewOutput{}, err
	}

	out := PreviewOutput{Dir: plan.Dir}
	for _, entry := range plan.Entries {
		out.Entries = append(out.Entries, PreviewEntry{
			Original: entry.Original,
			Final:    entry.Final,
			Index:    entry.Index,
		})
	}
	return nil, out, nil
}

func handleRename(ctx context.Context, req *mcp.CallToolRequest, input RenameInput) (*mcp.CallToolResult, RenameOutput, error) {
	logging.Debug("tool invoked",
		zap.String("tool", "rename"),
		zap.Bool("atomic", input.Atomic),
		zap.Bool("dryRun", input.DryRun))

	if input.Confirm != "yes" && !input.DryRun {
		return &mcp.CallToolResult{IsError: true}, RenameOutput{},
			fmt.Errorf("rename not confirmed: set confirm='yes' to proceed")
	}

	report, err := batch.WithOptions(input.Atomic, input.DryRun).Run(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenameOutput{}, err
	}

	out := RenameOutput{
		Success:    report.Failed == 0,
		Dir:        report.Dir,
		Eligible:   report.Eligible,
		Renamed:    report.Renamed,
		Failed:     report.Failed,
		RolledBack: report.RolledBack,
		ElapsedMS:  report.ElapsedMS,
	}
	for _, result := range report.Results {
		out.Results = append(out.Results, RenameResult{
			Original: result.Original,
			Final:    result.Final,
			Status:   string(result.Status),
			Message:  result.Message,
		})
	}
	return nil, out, nil
}
