// Package model defines the value types shared by the recognition,
// overlay, rendering, and analytics layers.
//
// An [Annotation] is the complete output of one recognizer pass: the source
// text, its entity [Span]s, its [Token]s, and its [Sentence] boundaries.
// Offsets throughout are byte offsets into the UTF-8 source text, so
// text[span.Start:span.End] is always the exact entity text.
//
// A [Segment] is one piece of the overlay segmentation: a contiguous,
// non-empty run of text that is either plain or belongs to a single entity.
// Segments are produced by the overlay package and consumed by the render
// and docx packages.
//
// All types here are plain values with no lifecycle: they are created per
// request, read concurrently, and never mutated in place.
package model
