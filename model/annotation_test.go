package model

import "testing"

func TestSpanLen(t *testing.T) {
	tests := []struct {
		span Span
		want int
	}{
		{Span{Start: 0, End: 7, Label: "CHARACTER"}, 7},
		{Span{Start: 23, End: 34, Label: "PERSON"}, 11},
		{Span{Start: 5, End: 6, Label: "ORG"}, 1},
	}

	for _, tt := range tests {
		if got := tt.span.Len(); got != tt.want {
			t.Errorf("Span{%d,%d}.Len() = %d, want %d", tt.span.Start, tt.span.End, got, tt.want)
		}
	}
}

func TestSegmentEntity(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want bool
	}{
		{"labeled", Segment{Text: "Bram Stoker", Label: "PERSON"}, true},
		{"plain", Segment{Text: "was written by "}, false},
		{"empty label", Segment{Text: "x", Label: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Entity(); got != tt.want {
				t.Errorf("Segment{%q,%q}.Entity() = %v, want %v", tt.seg.Text, tt.seg.Label, got, tt.want)
			}
		})
	}
}

func TestSentenceLen(t *testing.T) {
	tests := []struct {
		sentence Sentence
		want     int
	}{
		{Sentence{Start: 0, End: 5}, 5},
		{Sentence{Start: 5, End: 12}, 7},
		{Sentence{Start: 3, End: 3}, 0},
	}

	for _, tt := range tests {
		if got := tt.sentence.Len(); got != tt.want {
			t.Errorf("Sentence{%d,%d}.Len() = %d, want %d", tt.sentence.Start, tt.sentence.End, got, tt.want)
		}
	}
}
