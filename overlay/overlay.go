// Package overlay turns recognizer entity spans into a segmentation of the
// source text suitable for styled rendering or export.
//
// The segmentation is a lossless partition: every byte of the source text
// appears in exactly one segment, entity segments carry their label, and no
// segment is empty. Consumers render or export segments without re-deriving
// offsets.
package overlay

import (
	"errors"
	"fmt"

	"github.com/tsawler/rubrica/model"
)

var (
	// ErrSpanBounds reports a span whose offsets fall outside the text or
	// are inverted.
	ErrSpanBounds = errors.New("entity span out of bounds")

	// ErrSpanOrder reports spans that are out of order or overlapping.
	ErrSpanOrder = errors.New("entity spans out of order")
)

// Normalize returns the spans whose labels are members of selected, in
// their original order. The input is never mutated; the result is a fresh
// slice (nil when nothing matches). An empty selection filters out every
// span. Normalize does not merge, split, or re-sort.
func Normalize(spans []model.Span, selected []string) []model.Span {
	if len(spans) == 0 || len(selected) == 0 {
		return nil
	}

	keep := make(map[string]bool, len(selected))
	for _, l := range selected {
		keep[l] = true
	}

	var out []model.Span
	for _, s := range spans {
		if keep[s.Label] {
			out = append(out, s)
		}
	}
	return out
}

// Segment walks spans in order and splits text into plain and entity
// segments, filling the gaps before, between, and after entities. With no
// spans the whole text becomes a single plain segment; empty text yields an
// empty sequence. Zero-length segments are never emitted.
//
// Spans must be ordered by Start, non-overlapping, and within the bounds of
// text. Violations return ErrSpanBounds or ErrSpanOrder wrapped with the
// offending offsets; no partial segmentation is returned.
//
// Example:
//
//	segs, err := overlay.Segment("Dracula was written by Bram Stoker.",
//	    []model.Span{{Start: 23, End: 34, Label: "PERSON"}})
//	// [{Text: "Dracula was written by "} {Text: "Bram Stoker", Label: "PERSON"} {Text: "."}]
func Segment(text string, spans []model.Span) ([]model.Segment, error) {
	segs := make([]model.Segment, 0, 2*len(spans)+1)

	cursor := 0
	for _, s := range spans {
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			return nil, fmt.Errorf("%w: [%d,%d) in text of %d bytes", ErrSpanBounds, s.Start, s.End, len(text))
		}
		if s.Start < cursor {
			return nil, fmt.Errorf("%w: [%d,%d) starts before byte %d", ErrSpanOrder, s.Start, s.End, cursor)
		}

		if s.Start > cursor {
			segs = append(segs, model.Segment{Text: text[cursor:s.Start]})
		}
		segs = append(segs, model.Segment{Text: text[s.Start:s.End], Label: s.Label})
		cursor = s.End
	}

	if cursor < len(text) {
		segs = append(segs, model.Segment{Text: text[cursor:]})
	}
	return segs, nil
}
