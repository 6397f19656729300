// Package sequence holds the naming rules for a rename batch: which file
// names qualify, what the staged and final names look like, and how a
// directory listing becomes an ordered plan.
package sequence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shotseq/shotseq/internal/types"
)

// StagingExt is the extension reserved for files parked in the staging
// phase. It is excluded from eligibility so that leftovers from an
// interrupted run are never swept into a later sequence.
const StagingExt = ".tmp"

const stagingPrefix = "seqstage"

// DefaultSuffixes returns the classic screenshot suffix set. Matching is
// literal: ".Jpg" is not in the list, so a file named photo.Jpg does not
// qualify unless case folding is switched on.
func DefaultSuffixes() []string {
	return []string{".jpg", ".jpeg", ".JPG", ".JPEG"}
}

// Matcher decides file eligibility by name suffix.
type Matcher struct {
	suffixes []string
	foldCase bool
}

// NewMatcher creates a Matcher for the given suffixes. An empty slice falls
// back to DefaultSuffixes. With foldCase set, comparison ignores case.
func NewMatcher(suffixes []string, foldCase bool) *Matcher {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes()
	}
	m := &Matcher{foldCase: foldCase}
	m.suffixes = append(m.suffixes, suffixes...)
	return m
}

// Matches reports whether name ends with one of the configured suffixes.
func (m *Matcher) Matches(name string) bool {
	if m.foldCase {
		lower := strings.ToLower(name)
		for _, suffix := range m.suffixes {
			if strings.HasSuffix(lower, strings.ToLower(suffix)) {
				return true
			}
		}
		return false
	}
	for _, suffix := range m.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Filter returns the names that match, preserving input order.
func (m *Matcher) Filter(names []string) []string {
	var matched []string
	for _, name := range names {
		if m.Matches(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// StagingName returns the temporary name for entry index of run runID. The
// prefix and StagingExt keep staged names out of every eligibility set, so a
// staged file can never collide with an original or a final name.
func StagingName(runID, index int) string {
	return fmt.Sprintf("%s_%d_%02d%s", stagingPrefix, runID, index, StagingExt)
}

// FinalName builds the canonical sequential name. pad is a minimum width:
// indices with more digits widen the field instead of truncating.
func FinalName(prefix string, index, pad int, ext string) string {
	return fmt.Sprintf("%s%0*d%s", prefix, pad, index, ext)
}

// Options parameterize plan building.
type Options struct {
	RunID     int
	Prefix    string
	Pad       int
	OutputExt string
}

// BuildPlan sorts names lexicographically by byte value and assigns
// contiguous 1-based indices. The input slice is not modified.
func BuildPlan(dir string, names []string, opts Options) types.Plan {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	plan := types.Plan{Dir: dir, Entries: make([]types.PlanEntry, 0, len(sorted))}
	for i, name := range sorted {
		index := i + 1
		plan.Entries = append(plan.Entries, types.PlanEntry{
			Original: name,
			Staged:   StagingName(opts.RunID, index),
			Final:    FinalName(opts.Prefix, index, opts.Pad, opts.OutputExt),
			Index:    index,
		})
	}
	return plan
}
