// Package renamer implements the two-phase batch rename: scan a directory
// for eligible files, park them under reserved staging names, then finalize
// them into the canonical sequence. The detour through staging names is what
// makes renaming safe when originals already look like sequence names.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/shotseq/shotseq/internal/config"
	"github.com/shotseq/shotseq/internal/sequence"
	"github.com/shotseq/shotseq/internal/types"
)

// ErrDirNotFound reports that the target directory does not exist. Nothing
// has been touched when it is returned.
var ErrDirNotFound = errors.New("directory not found")

// Service runs rename batches against one target directory.
type Service struct {
	cfg     config.Config
	log     *zap.Logger
	matcher *sequence.Matcher
}

// New creates a Service for cfg. A nil logger falls back to a no-op logger,
// which keeps the core quiet in tests.
func New(cfg config.Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		cfg:     cfg,
		log:     log,
		matcher: sequence.NewMatcher(cfg.Extensions, cfg.CaseInsensitive),
	}
}

// WithOptions returns a copy of the service with the run behavior switched.
// The target directory and eligibility rules are shared.
func (s *Service) WithOptions(atomic, dryRun bool) *Service {
	cfg := s.cfg
	cfg.Atomic = atomic
	cfg.DryRun = dryRun
	return &Service{cfg: cfg, log: s.log, matcher: s.matcher}
}

// Scan lists the target directory and splits its regular files into eligible
// and skipped sets, both sorted by byte value. Directories and other
// non-regular entries are ignored entirely.
func (s *Service) Scan() (types.Listing, error) {
	listing := types.Listing{Dir: s.cfg.Dir}

	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return listing, fmt.Errorf("%w: %s", ErrDirNotFound, s.cfg.Dir)
		}
		if errors.Is(err, fs.ErrPermission) {
			return listing, fmt.Errorf("permission denied: %s", s.cfg.Dir)
		}
		return listing, fmt.Errorf("failed to list directory: %s - %w", s.cfg.Dir, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if s.matcher.Matches(name) {
			listing.Eligible = append(listing.Eligible, name)
		} else {
			listing.Skipped = append(listing.Skipped, name)
		}
	}

	sort.Strings(listing.Eligible)
	sort.Strings(listing.Skipped)
	return listing, nil
}

// Preview builds the rename plan without touching any file.
func (s *Service) Preview() (types.Plan, error) {
	listing, err := s.Scan()
	if err != nil {
		return types.Plan{}, err
	}
	return s.plan(listing.Eligible), nil
}

func (s *Service) plan(names []string) types.Plan {
	return sequence.BuildPlan(s.cfg.Dir, names, sequence.Options{
		RunID:     os.Getpid(),
		Prefix:    s.cfg.Prefix,
		Pad:       s.cfg.Pad,
		OutputExt: s.cfg.OutputExt,
	})
}

// Run executes the batch. In the default mode a file that fails either phase
// is logged and left behind while the rest of the batch proceeds; in atomic
// mode the first failure rolls every file back and Run returns an error. A
// dry run reports the plan without renaming anything.
func (s *Service) Run(ctx context.Context) (report types.Report, err error) {
	start := time.Now()
	defer func() {
		report.ElapsedMS = time.Since(start).Milliseconds()
	}()

	listing, err := s.Scan()
	if err != nil {
		return types.Report{Dir: s.cfg.Dir}, err
	}

	report = types.Report{Dir: s.cfg.Dir, Eligible: len(listing.Eligible), DryRun: s.cfg.DryRun}
	if len(listing.Eligible) == 0 {
		s.log.Info("no matching files found", zap.String("dir", s.cfg.Dir))
		return report, nil
	}

	plan := s.plan(listing.Eligible)
	s.log.Info("processing files",
		zap.Int("count", len(plan.Entries)),
		zap.String("dir", s.cfg.Dir),
		zap.Bool("dryRun", s.cfg.DryRun),
		zap.Bool("atomic", s.cfg.Atomic))

	if s.cfg.DryRun {
		for _, e := range plan.Entries {
			report.Results = append(report.Results, types.FileResult{
				Original: e.Original,
				Final:    e.Final,
				Index:    e.Index,
				Status:   types.StatusPlanned,
			})
		}
		return report, nil
	}

	if s.cfg.Atomic {
		err = s.runAtomic(ctx, plan, &report)
	} else {
		err = s.runTolerant(ctx, plan, &report)
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Index < report.Results[j].Index
	})
	return report, err
}

// runTolerant renames what it can and skips what it cannot. Cancellation is
// honored between staging renames only; files already staged still receive
// their final names so an interrupt never strands temporaries.
func (s *Service) runTolerant(ctx context.Context, plan types.Plan, report *types.Report) error {
	interrupted := false
	staged := make([]types.PlanEntry, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		if ctx.Err() != nil {
			s.log.Warn("batch interrupted during staging",
				zap.Int("staged", len(staged)),
				zap.Int("total", len(plan.Entries)))
			interrupted = true
			break
		}
		if err := s.rename(e.Original, e.Staged); err != nil {
			s.log.Error("failed to stage file", zap.String("file", e.Original), zap.Error(err))
			report.Failed++
			report.Results = append(report.Results, types.FileResult{
				Original: e.Original,
				Index:    e.Index,
				Status:   types.StatusStagingFailed,
				Message:  err.Error(),
			})
			continue
		}
		staged = append(staged, e)
	}

	for _, e := range staged {
		if err := s.rename(e.Staged, e.Final); err != nil {
			s.log.Error("failed to finalize file",
				zap.String("file", e.Original),
				zap.String("staged", e.Staged),
				zap.Error(err))
			report.Failed++
			report.Results = append(report.Results, types.FileResult{
				Original: e.Original,
				Final:    e.Final,
				Index:    e.Index,
				Status:   types.StatusFinalizeFailed,
				Message:  err.Error(),
			})
			continue
		}
		s.log.Info("renamed", zap.String("from", e.Original), zap.String("to", e.Final))
		report.Renamed++
		report.Results = append(report.Results, types.FileResult{
			Original: e.Original,
			Final:    e.Final,
			Index:    e.Index,
			Status:   types.StatusRenamed,
		})
	}

	if interrupted {
		return ctx.Err()
	}
	return nil
}

// runAtomic stages every file before finalizing any, and undoes the whole
// batch on the first failure. The directory ends in exactly one of two
// states: fully renamed, or the original name set restored.
func (s *Service) runAtomic(ctx context.Context, plan types.Plan, report *types.Report) error {
	staged := make([]types.PlanEntry, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		if err := ctx.Err(); err != nil {
			s.rollback(nil, staged, report)
			report.RolledBack = true
			return fmt.Errorf("atomic batch aborted: %w", err)
		}
		if err := s.rename(e.Original, e.Staged); err != nil {
			s.log.Error("failed to stage file", zap.String("file", e.Original), zap.Error(err))
			report.Failed++
			report.Results = append(report.Results, types.FileResult{
				Original: e.Original,
				Index:    e.Index,
				Status:   types.StatusStagingFailed,
				Message:  err.Error(),
			})
			s.rollback(nil, staged, report)
			report.RolledBack = true
			return fmt.Errorf("atomic batch aborted: staging %s: %w", e.Original, err)
		}
		staged = append(staged, e)
	}

	finalized := make([]types.PlanEntry, 0, len(staged))
	for i, e := range staged {
		if err := ctx.Err(); err != nil {
			s.rollback(finalized, staged[i:], report)
			report.RolledBack = true
			return fmt.Errorf("atomic batch aborted: %w", err)
		}
		if err := s.rename(e.Staged, e.Final); err != nil {
			s.log.Error("failed to finalize file",
				zap.String("file", e.Original),
				zap.String("staged", e.Staged),
				zap.Error(err))
			s.rollback(finalized, staged[i:], report)
			report.RolledBack = true
			return fmt.Errorf("atomic batch aborted: finalizing %s: %w", e.Original, err)
		}
		finalized = append(finalized, e)
	}

	for _, e := range finalized {
		s.log.Info("renamed", zap.String("from", e.Original), zap.String("to", e.Final))
		report.Renamed++
		report.Results = append(report.Results, types.FileResult{
			Original: e.Original,
			Final:    e.Final,
			Index:    e.Index,
			Status:   types.StatusRenamed,
		})
	}
	return nil
}

// rollback restores original names, best effort. Finalized entries step back
// through their staged names first: a final name can equal another entry's
// original, so restoring directly could clobber a file that has not moved
// yet. Once everything sits on staging names the originals are all free.
func (s *Service) rollback(finalized, staged []types.PlanEntry, report *types.Report) {
	restaged := make([]types.PlanEntry, 0, len(finalized)+len(staged))
	for _, e := range finalized {
		if err := s.rename(e.Final, e.Staged); err != nil {
			s.log.Error("rollback failed", zap.String("file", e.Final), zap.Error(err))
			report.Failed++
			report.Results = append(report.Results, types.FileResult{
				Original: e.Original,
				Final:    e.Final,
				Index:    e.Index,
				Status:   types.StatusRollbackFailed,
				Message:  err.Error(),
			})
			continue
		}
		restaged = append(restaged, e)
	}
	restaged = append(restaged, staged...)

	for _, e := range restaged {
		if err := s.rename(e.Staged, e.Original); err != nil {
			s.log.Error("rollback failed", zap.String("file", e.Staged), zap.Error(err))
			report.Failed++
			report.Results = append(report.Results, types.FileResult{
				Original: e.Original,
				Index:    e.Index,
				Status:   types.StatusRollbackFailed,
				Message:  err.Error(),
			})
			continue
		}
		report.Results = append(report.Results, types.FileResult{
			Original: e.Original,
			Index:    e.Index,
			Status:   types.StatusRolledBack,
		})
	}

	s.log.Warn("batch rolled back", zap.String("dir", s.cfg.Dir))
}

// rename moves one file within the target directory. It refuses to clobber:
// a rename whose target exists fails instead of silently replacing the file.
func (s *Service) rename(from, to string) error {
	src := filepath.Join(s.cfg.Dir, from)
	dst := filepath.Join(s.cfg.Dir, to)
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("target already exists: %s", to)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("rename %s to %s: %w", from, to, err)
	}
	return nil
}
