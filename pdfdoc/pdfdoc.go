// Package pdfdoc extracts plain text from PDF documents.
//
// Extraction walks each page's positioned text runs, groups them into rows
// by Y coordinate, sorts each row left to right, and reassembles lines with
// word spacing inferred from the horizontal gaps between runs. The result is
// reading-order text suitable for entity recognition, not a layout-faithful
// rendition.
package pdfdoc

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Gaps wider than this fraction of the font size separate words.
const wordGapRatio = 0.3

// Text extracts the text content of a PDF from its raw bytes. Pages are
// joined with blank lines, rows within a page with newlines. Malformed input
// returns an error; parser panics from corrupt cross-reference tables are
// recovered and reported as errors.
func Text(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		if s := pageText(page); s != "" {
			pages = append(pages, s)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}

// pageText assembles one page's runs into lines.
func pageText(page pdf.Page) string {
	content := page.Content()

	runs := make([]pdf.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S != "" && t.S != "\n" {
			runs = append(runs, t)
		}
	}
	if len(runs) == 0 {
		return ""
	}

	var lines []string
	for _, row := range groupRows(runs) {
		if line := strings.TrimSpace(rowText(row)); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// groupRows buckets runs by Y coordinate and orders the rows top to bottom.
// The bucket tolerance scales with font size so tightly leaded small print
// does not merge adjacent lines.
func groupRows(runs []pdf.Text) [][]pdf.Text {
	type row struct {
		y    float64
		runs []pdf.Text
	}

	var rows []*row
	for _, t := range runs {
		tol := t.FontSize * 0.5
		if tol < 2 {
			tol = 2
		}

		var match *row
		for _, r := range rows {
			if math.Abs(r.y-t.Y) <= tol {
				match = r
				break
			}
		}
		if match == nil {
			rows = append(rows, &row{y: t.Y, runs: []pdf.Text{t}})
			continue
		}
		match.runs = append(match.runs, t)
	}

	// Higher Y is higher on the page.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([][]pdf.Text, len(rows))
	for i, r := range rows {
		runs := r.runs
		sort.SliceStable(runs, func(a, b int) bool { return runs[a].X < runs[b].X })
		out[i] = runs
	}
	return out
}

// rowText joins a row's runs left to right. A space is inserted when the gap
// between runs is wide enough to separate words, unless the runs already
// carry an explicit space glyph. Runs with zero metric widths (fonts without
// a Widths array) fall through to stream order with no inferred spaces.
func rowText(row []pdf.Text) string {
	var b strings.Builder
	prevS := ""
	for i, t := range row {
		if i > 0 {
			prev := row[i-1]
			gap := t.X - (prev.X + prev.W)
			if prev.W > 0 && (gap > t.FontSize*wordGapRatio || gap > 3) &&
				!strings.HasSuffix(prevS, " ") && !strings.HasPrefix(t.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prevS = t.S
	}
	return b.String()
}
