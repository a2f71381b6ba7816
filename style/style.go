// Package style maps entity labels to display colors.
//
// Two color spaces are kept in parallel: a screen color (a CSS color
// keyword, used by the HTML renderer) and an export color (an RGB triple,
// used for document text color). Lookups are total: a label with no palette
// entry resolves to a neutral gray in either space, so callers never branch
// on label membership.
package style

import (
	"fmt"
	"sort"
)

// RGB is an export-space color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string, the form OOXML run
// properties expect.
//
// Example:
//
//	style.RGB{50, 205, 50}.Hex() // "32CD32"
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Fallback colors for labels absent from the palette.
const fallbackScreen = "gray"

var fallbackExport = RGB{128, 128, 128}

// Registry resolves entity labels to screen and export colors. Build one
// with NewRegistry, optionally extend it with Set before handing it to an
// engine, and treat it as read-only afterwards; a Registry that is no
// longer being modified is safe for concurrent readers.
type Registry struct {
	screen map[string]string
	export map[string]RGB
}

// NewRegistry returns a Registry loaded with the default palette.
func NewRegistry() *Registry {
	return &Registry{
		screen: map[string]string{
			"PERSON":       "lime",
			"LIT_WORK":     "blue",
			"ART_WORK":     "green",
			"ART_MOVEMENT": "orange",
			"ORG":          "purple",
			"PLACE":        "teal",
			"EVENT":        "cyan",
			"GENRE":        "pink",
			"CHARACTER":    "brown",
			"QUOTE":        "gold",
			"AWARD":        "lime",
			"PERIOD":       "magenta",
			"TECHNIQUE":    "indigo",
			"MOVIE_TV":     "violet",
		},
		export: map[string]RGB{
			"PERSON":       {50, 205, 50},
			"LIT_WORK":     {0, 0, 255},
			"ART_WORK":     {0, 128, 0},
			"ART_MOVEMENT": {255, 165, 0},
			"ORG":          {128, 0, 128},
			"PLACE":        {0, 128, 128},
			"EVENT":        {0, 255, 255},
			"GENRE":        {255, 20, 147},
			"CHARACTER":    {165, 42, 42},
			"QUOTE":        {255, 215, 0},
			"AWARD":        {50, 205, 50},
			"PERIOD":       {255, 0, 255},
			"TECHNIQUE":    {75, 0, 130},
			"MOVIE_TV":     {148, 0, 211},
		},
	}
}

// Set adds or replaces the palette entry for label in both color spaces.
func (r *Registry) Set(label, screen string, export RGB) {
	r.screen[label] = screen
	r.export[label] = export
}

// Screen returns the screen color for label, or "gray" when the label has
// no palette entry.
func (r *Registry) Screen(label string) string {
	if c, ok := r.screen[label]; ok {
		return c
	}
	return fallbackScreen
}

// Export returns the export color for label, or mid-gray when the label has
// no palette entry.
func (r *Registry) Export(label string) RGB {
	if c, ok := r.export[label]; ok {
		return c
	}
	return fallbackExport
}

// Labels returns the labels the registry styles, sorted.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.screen))
	for l := range r.screen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
