// Package pipeline provides entity recognizers.
//
// A Recognizer turns raw text into a model.Annotation: entity spans, tokens,
// and sentence boundaries. The default recognizer wraps the prose NLP
// library; a static recognizer serves tests and offline use; an ONNX
// transformer recognizer is available behind the "onnx" build tag.
package pipeline

import (
	"strings"
	"unicode"

	"github.com/tsawler/rubrica/model"
)

// Recognizer produces a full annotation for a text. Process must return
// entity spans sorted by Start and mutually non-overlapping, with byte
// offsets into the input so that text[s.Start:s.End] is the entity text.
// Labels lists every entity label the recognizer can emit.
type Recognizer interface {
	Process(text string) (*model.Annotation, error)
	Labels() []string
}

// tokenize splits text into whitespace-delimited tokens with byte offsets.
func tokenize(text string) []model.Token {
	var toks []model.Token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, model.Token{Text: text[start:i], Start: start, End: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, model.Token{Text: text[start:], Start: start, End: len(text)})
	}
	return toks
}

// sentences groups tokens into sentence ranges, breaking after tokens that
// end with a terminator.
func sentences(toks []model.Token) []model.Sentence {
	var sents []model.Sentence
	first := 0
	for i, t := range toks {
		if strings.HasSuffix(t.Text, ".") || strings.HasSuffix(t.Text, "!") || strings.HasSuffix(t.Text, "?") {
			sents = append(sents, model.Sentence{Start: first, End: i + 1})
			first = i + 1
		}
	}
	if first < len(toks) {
		sents = append(sents, model.Sentence{Start: first, End: len(toks)})
	}
	return sents
}
