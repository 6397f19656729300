package sequence

import (
	"strings"
	"testing"
)

func TestMatcher_DefaultSuffixes(t *testing.T) {
	m := NewMatcher(nil, false)

	tests := []struct {
		name string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.JPG", true},
		{"photo.JPEG", true},
		{"photo.Jpg", false},
		{"photo.JpEg", false},
		{"photo.png", false},
		{"photo.jpg.txt", false},
		{"notes.txt", false},
		{"jpg", false},
		{"seqstage_1_01.tmp", false},
		{"archive.with.dots.jpeg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatcher_FoldCase(t *testing.T) {
	m := NewMatcher(nil, true)

	tests := []struct {
		name string
		want bool
	}{
		{"photo.Jpg", true},
		{"photo.JpEg", true},
		{"photo.jPG", true},
		{"photo.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatcher_CustomSuffixes(t *testing.T) {
	m := NewMatcher([]string{".png"}, false)

	if !m.Matches("image.png") {
		t.Error("Matches(\"image.png\") = false, want true")
	}
	if m.Matches("image.jpg") {
		t.Error("Matches(\"image.jpg\") = true, want false")
	}
}

func TestMatcher_Filter(t *testing.T) {
	m := NewMatcher(nil, false)
	names := []string{"b.jpg", "readme.txt", "a.JPEG", "c.Jpg"}

	got := m.Filter(names)
	want := []string{"b.jpg", "a.JPEG"}

	if len(got) != len(want) {
		t.Fatalf("Filter() returned %d names, want %d", len(got), len(want))
	}
	for i, name := range got {
		if name != want[i] {
			t.Errorf("Filter()[%d] = %q, want %q", i, name, want[i])
		}
	}
}

func TestStagingName_Shape(t *testing.T) {
	name := StagingName(42, 7)

	if name != "seqstage_42_07.tmp" {
		t.Errorf("StagingName(42, 7) = %q, want %q", name, "seqstage_42_07.tmp")
	}
	if !strings.HasSuffix(name, StagingExt) {
		t.Errorf("StagingName() = %q, want %s suffix", name, StagingExt)
	}
}

func TestStagingName_NeverEligible(t *testing.T) {
	m := NewMatcher(nil, false)

	for index := 1; index <= 120; index++ {
		if name := StagingName(12345, index); m.Matches(name) {
			t.Fatalf("staged name %q matched the default suffix set", name)
		}
	}
}

func TestFinalName(t *testing.T) {
	tests := []struct {
		prefix string
		index  int
		pad    int
		ext    string
		want   string
	}{
		{"screen_", 1, 2, ".jpg", "screen_01.jpg"},
		{"screen_", 12, 2, ".jpg", "screen_12.jpg"},
		{"screen_", 100, 2, ".jpg", "screen_100.jpg"},
		{"shot-", 5, 3, ".png", "shot-005.png"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FinalName(tt.prefix, tt.index, tt.pad, tt.ext); got != tt.want {
				t.Errorf("FinalName(%q, %d, %d, %q) = %q, want %q",
					tt.prefix, tt.index, tt.pad, tt.ext, got, tt.want)
			}
		})
	}
}

func TestBuildPlan_SortsAndIndexes(t *testing.T) {
	names := []string{"c.jpg", "a.jpg", "b.jpg"}
	plan := BuildPlan("shots", names, Options{RunID: 1, Prefix: "screen_", Pad: 2, OutputExt: ".jpg"})

	if plan.Dir != "shots" {
		t.Errorf("plan.Dir = %q, want %q", plan.Dir, "shots")
	}
	if len(plan.Entries) != 3 {
		t.Fatalf("len(plan.Entries) = %d, want 3", len(plan.Entries))
	}

	wantOriginals := []string{"a.jpg", "b.jpg", "c.jpg"}
	wantFinals := []string{"screen_01.jpg", "screen_02.jpg", "screen_03.jpg"}
	for i, entry := range plan.Entries {
		if entry.Original != wantOriginals[i] {
			t.Errorf("Entries[%d].Original = %q, want %q", i, entry.Original, wantOriginals[i])
		}
		if entry.Final != wantFinals[i] {
			t.Errorf("Entries[%d].Final = %q, want %q", i, entry.Final, wantFinals[i])
		}
		if entry.Index != i+1 {
			t.Errorf("Entries[%d].Index = %d, want %d", i, entry.Index, i+1)
		}
	}

	// Input order must survive the sort copy.
	if names[0] != "c.jpg" {
		t.Errorf("input slice was reordered: %v", names)
	}
}

func TestBuildPlan_ByteOrder(t *testing.T) {
	// Sorting is by byte value, so every uppercase name precedes every
	// lowercase one.
	names := []string{"b.jpg", "A.jpg", "Z.jpg", "a.jpg"}
	plan := BuildPlan("shots", names, Options{RunID: 1, Prefix: "screen_", Pad: 2, OutputExt: ".jpg"})

	want := []string{"A.jpg", "Z.jpg", "a.jpg", "b.jpg"}
	for i, entry := range plan.Entries {
		if entry.Original != want[i] {
			t.Errorf("Entries[%d].Original = %q, want %q", i, entry.Original, want[i])
		}
	}
}

func TestBuildPlan_StagedNamesDistinct(t *testing.T) {
	names := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}
	plan := BuildPlan("shots", names, Options{RunID: 99, Prefix: "screen_", Pad: 2, OutputExt: ".jpg"})

	seen := make(map[string]bool)
	for _, entry := range plan.Entries {
		if seen[entry.Staged] {
			t.Fatalf("staged name %q assigned twice", entry.Staged)
		}
		seen[entry.Staged] = true
	}
}

func TestBuildPlan_Empty(t *testing.T) {
	plan := BuildPlan("shots", nil, Options{RunID: 1, Prefix: "screen_", Pad: 2, OutputExt: ".jpg"})
	if len(plan.Entries) != 0 {
		t.Errorf("len(plan.Entries) = %d, want 0", len(plan.Entries))
	}
}
