package model

// Span is one labeled entity occurrence in a source text, delimited by byte
// offsets. Start is inclusive and End exclusive, so text[Start:End] is the
// entity text. Recognizers deliver spans ordered by Start and mutually
// non-overlapping.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Len returns the span width in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Segment is a contiguous, non-empty run of source text produced by overlay
// segmentation. An empty Label marks plain text; a non-empty Label marks
// text belonging to one entity of that label. Concatenating the Text of a
// segmentation's segments reproduces the source text exactly.
type Segment struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// Entity reports whether the segment carries an entity label.
func (s Segment) Entity() bool { return s.Label != "" }

// Token is a single token with its byte offsets in the source text.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Sentence is a half-open range [Start, End) of token indices into an
// annotation's Tokens slice.
type Sentence struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of tokens in the sentence.
func (s Sentence) Len() int { return s.End - s.Start }

// Annotation is the complete recognizer output for one text: the text
// itself, its entity spans, its tokens, and its sentence boundaries
// expressed as token ranges. Both the overlay path and the analytics path
// consume the same Annotation; neither mutates it.
type Annotation struct {
	Text      string     `json:"text"`
	Entities  []Span     `json:"entities"`
	Tokens    []Token    `json:"tokens"`
	Sentences []Sentence `json:"sentences"`
}
