// Package main implements the shotseq CLI, which renames batches of
// screenshots into a clean zero-padded sequence, and an MCP server exposing
// the same operations to AI harnesses.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/shotseq/shotseq/internal/config"
	"github.com/shotseq/shotseq/internal/display"
	"github.com/shotseq/shotseq/internal/logging"
	"github.com/shotseq/shotseq/internal/renamer"
)

var flags struct {
	configPath string
	dryRun     bool
	atomic     bool
	exts       []string
	ignoreCase bool
	prefix     string
	pad        int
	outputExt  string
	verbose    bool
	logFormat  string
}

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "shotseq [dir]",
		Short: "Rename screenshot batches into a zero-padded sequence",
		Long: `shotseq renames every matching image in a directory into a canonical
zero-padded sequence (screen_01.jpg, screen_02.jpg, ...) that preserves
the alphabetical order of the original names. Files detour through a
reserved temporary name first, so originals that already look like
sequence names can never collide with their targets.`,
		Example: `  shotseq                    # rename ./screenshots
  shotseq ~/shots --dry-run  # preview the plan only
  shotseq ~/shots --atomic   # all-or-nothing with rollback`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRename,
	}
	addConfigFlags(root)
	root.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "show the plan without renaming anything")

	serve := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve scan, preview, and rename as MCP tools over stdio",
		Long: `serve starts a Model Context Protocol (MCP) server bound to one target
directory. It exposes the scan, preview, and rename tools so an
MCP-compatible AI harness can inspect and resequence the directory.`,
		Example: `  shotseq serve ~/shots`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServe,
	}
	addConfigFlags(serve)
	root.AddCommand(serve)

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&flags.configPath, "config", "c", "", "config file (default shotseq.yaml if present)")
	fl.StringSliceVarP(&flags.exts, "ext", "e", nil, "eligible name suffixes, literal unless --ignore-case (default .jpg,.jpeg,.JPG,.JPEG)")
	fl.BoolVar(&flags.ignoreCase, "ignore-case", false, "match suffixes case-insensitively")
	fl.StringVarP(&flags.prefix, "prefix", "p", "", "prefix for sequence names (default screen_)")
	fl.IntVar(&flags.pad, "pad", 0, "minimum zero-pad width for indices (default 2)")
	fl.StringVar(&flags.outputExt, "output-ext", "", "extension for sequence names (default .jpg)")
	fl.BoolVar(&flags.atomic, "atomic", false, "roll the whole batch back if any file fails")
	fl.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	fl.StringVar(&flags.logFormat, "log-format", "", "log output format: console or json")
}

// buildConfig layers the final configuration: defaults, config file,
// SHOTSEQ_* environment, then whichever flags were set on the command line.
func buildConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	if len(args) > 0 {
		cfg.Dir = args[0]
	}

	fl := cmd.Flags()
	if fl.Changed("ext") {
		cfg.Extensions = flags.exts
	}
	if fl.Changed("ignore-case") {
		cfg.CaseInsensitive = flags.ignoreCase
	}
	if fl.Changed("prefix") {
		cfg.Prefix = flags.prefix
	}
	if fl.Changed("pad") {
		cfg.Pad = flags.pad
	}
	if fl.Changed("output-ext") {
		cfg.OutputExt = flags.outputExt
	}
	if fl.Changed("atomic") {
		cfg.Atomic = flags.atomic
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if fl.Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	svc := renamer.New(cfg, logging.L())
	report, err := svc.Run(cmd.Context())
	if err != nil && !report.RolledBack {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.Summary(report))
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	batch = renamer.New(cfg, logging.L())

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "shotseq",
		Version: version,
	}, nil)

	registerTools(server)

	logging.Info("serving MCP tools over stdio")
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
