package style

import (
	"sort"
	"testing"
)

func TestScreen(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		label string
		want  string
	}{
		{"PERSON", "lime"},
		{"LIT_WORK", "blue"},
		{"ORG", "purple"},
		{"PLACE", "teal"},
		{"CHARACTER", "brown"},
		{"MOVIE_TV", "violet"},
		{"NOT_A_LABEL", "gray"},
		{"", "gray"},
		{"person", "gray"}, // lookups are case-sensitive
	}

	for _, tt := range tests {
		if got := reg.Screen(tt.label); got != tt.want {
			t.Errorf("Screen(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		label string
		want  RGB
	}{
		{"PERSON", RGB{50, 205, 50}},
		{"QUOTE", RGB{255, 215, 0}},
		{"TECHNIQUE", RGB{75, 0, 130}},
		{"NOT_A_LABEL", RGB{128, 128, 128}},
		{"", RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		if got := reg.Export(tt.label); got != tt.want {
			t.Errorf("Export(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		color RGB
		want  string
	}{
		{RGB{50, 205, 50}, "32CD32"},
		{RGB{0, 0, 255}, "0000FF"},
		{RGB{128, 128, 128}, "808080"},
		{RGB{0, 0, 0}, "000000"},
		{RGB{255, 255, 255}, "FFFFFF"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("RGB{%d,%d,%d}.Hex() = %q, want %q", tt.color.R, tt.color.G, tt.color.B, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	reg := NewRegistry()
	reg.Set("CUSTOM", "salmon", RGB{250, 128, 114})

	if got := reg.Screen("CUSTOM"); got != "salmon" {
		t.Errorf("Screen(\"CUSTOM\") = %q, want %q", got, "salmon")
	}
	if got := reg.Export("CUSTOM"); got != (RGB{250, 128, 114}) {
		t.Errorf("Export(\"CUSTOM\") = %v, want %v", got, RGB{250, 128, 114})
	}

	// Replacing an existing entry takes effect in both spaces.
	reg.Set("PERSON", "red", RGB{255, 0, 0})
	if got := reg.Screen("PERSON"); got != "red" {
		t.Errorf("Screen(\"PERSON\") after Set = %q, want %q", got, "red")
	}
	if got := reg.Export("PERSON"); got != (RGB{255, 0, 0}) {
		t.Errorf("Export(\"PERSON\") after Set = %v, want %v", got, RGB{255, 0, 0})
	}
}

func TestLabels(t *testing.T) {
	reg := NewRegistry()
	labels := reg.Labels()

	if len(labels) != 14 {
		t.Fatalf("Labels() returned %d labels, want 14", len(labels))
	}
	if !sort.StringsAreSorted(labels) {
		t.Errorf("Labels() not sorted: %v", labels)
	}

	want := map[string]bool{"PERSON": true, "ORG": true, "PLACE": true, "MOVIE_TV": true}
	seen := make(map[string]bool)
	for _, l := range labels {
		seen[l] = true
	}
	for l := range want {
		if !seen[l] {
			t.Errorf("Labels() missing %q", l)
		}
	}
}
