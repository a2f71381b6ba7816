package pipeline

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/tsawler/rubrica/model"
)

var _ Recognizer = (*Prose)(nil)

// proseLabels maps prose model labels to registry labels.
var proseLabels = map[string]string{
	"PERSON": "PERSON",
	"GPE":    "PLACE",
	"ORG":    "ORG",
}

// Prose recognizes entities with the prose NLP library. It is the default
// recognizer: self-contained, no model files or external services.
type Prose struct{}

// NewProse creates the prose-backed recognizer.
func NewProse() *Prose {
	return &Prose{}
}

// Labels returns the registry labels the prose model can emit.
func (p *Prose) Labels() []string {
	return []string{"ORG", "PERSON", "PLACE"}
}

// Process runs tokenization, sentence segmentation, and entity recognition
// over text. Prose reports no offsets, so spans, tokens, and sentences are
// located in the source with a forward cursor; the cursor only advances,
// which keeps the resulting spans ordered and non-overlapping. Entities
// whose text cannot be located verbatim are dropped.
func (p *Prose) Process(text string) (*model.Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return &model.Annotation{Text: text}, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("analyzing text: %w", err)
	}

	ann := &model.Annotation{Text: text}

	cursor := 0
	for _, ent := range doc.Entities() {
		label, ok := proseLabels[ent.Label]
		if !ok {
			continue
		}
		idx := strings.Index(text[cursor:], ent.Text)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		end := start + len(ent.Text)
		ann.Entities = append(ann.Entities, model.Span{Start: start, End: end, Label: label})
		cursor = end
	}

	cursor = 0
	for _, tok := range doc.Tokens() {
		idx := strings.Index(text[cursor:], tok.Text)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		end := start + len(tok.Text)
		ann.Tokens = append(ann.Tokens, model.Token{Text: tok.Text, Start: start, End: end})
		cursor = end
	}

	cursor = 0
	tokIdx := 0
	for _, sent := range doc.Sentences() {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		idx := strings.Index(text[cursor:], s)
		if idx < 0 {
			continue
		}
		end := cursor + idx + len(s)
		cursor = end

		first := tokIdx
		for tokIdx < len(ann.Tokens) && ann.Tokens[tokIdx].End <= end {
			tokIdx++
		}
		if tokIdx > first {
			ann.Sentences = append(ann.Sentences, model.Sentence{Start: first, End: tokIdx})
		}
	}

	return ann, nil
}
