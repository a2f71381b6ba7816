// Package render produces an HTML preview of segmented text with entities
// highlighted in their registry screen colors.
package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/rubrica/model"
	"github.com/tsawler/rubrica/style"
)

// HTML renders segments as an HTML fragment. Entity segments become mark
// elements carrying the label and the registry's screen color; plain
// segments pass through as escaped literal text. Newlines render as br
// elements so the preview keeps line structure. The result is
// deterministic and safe to embed: all segment text and labels are escaped,
// so entity content is never interpreted as markup.
//
// Example:
//
//	segs, _ := overlay.Segment(text, spans)
//	fragment := render.HTML(segs, style.NewRegistry())
func HTML(segments []model.Segment, reg *style.Registry) string {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.Entity() {
			writeText(&b, seg.Text)
			continue
		}

		b.WriteString(`<mark class="entity" style="background: `)
		b.WriteString(html.EscapeString(reg.Screen(seg.Label)))
		b.WriteString(`;">`)
		writeText(&b, seg.Text)
		b.WriteString(`<span class="label">`)
		b.WriteString(html.EscapeString(seg.Label))
		b.WriteString(`</span></mark>`)
	}
	return b.String()
}

// writeText writes s escaped, with newlines as br elements.
func writeText(b *strings.Builder, s string) {
	b.WriteString(strings.ReplaceAll(html.EscapeString(s), "\n", "<br>"))
}
