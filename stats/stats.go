// Package stats computes descriptive statistics over a recognizer's output.
//
// Statistics are always computed on the full annotation, independent of any
// label filtering applied for display. All ratio outputs are zero-guarded:
// a text with no tokens has entity density 0 and a text with no sentences
// has mean sentence length 0, never a division error.
package stats

import "github.com/tsawler/rubrica/model"

// Report holds the aggregate statistics for one annotated text. The JSON
// field names are part of the stats endpoint's wire contract.
type Report struct {
	// EntityCount is the number of recognized entities.
	EntityCount int `json:"entity_count"`

	// EntityDistribution maps label to occurrence count. Labels with no
	// occurrences are absent, not zero-valued.
	EntityDistribution map[string]int `json:"entity_distribution"`

	// TokenCount is the total number of tokens.
	TokenCount int `json:"token_count"`

	// EntityDensity is EntityCount / TokenCount, or 0 with no tokens.
	EntityDensity float64 `json:"entity_density"`

	// SentenceLengths lists the token count of each sentence in order.
	SentenceLengths []int `json:"sentence_lengths"`

	// AvgSentenceLength is the mean of SentenceLengths, or 0 with no
	// sentences.
	AvgSentenceLength float64 `json:"avg_sentence_length"`

	// EntityTokenLengths lists each entity's length in tokens, in the
	// entities' original order.
	EntityTokenLengths []int `json:"named_entity_length_distribution"`
}

// Analyze computes a Report over the annotation. The annotation is not
// mutated; the returned Report shares no storage with it.
func Analyze(a *model.Annotation) *Report {
	rep := &Report{
		EntityCount:        len(a.Entities),
		EntityDistribution: make(map[string]int),
		TokenCount:         len(a.Tokens),
		SentenceLengths:    make([]int, 0, len(a.Sentences)),
		EntityTokenLengths: make([]int, 0, len(a.Entities)),
	}

	for _, e := range a.Entities {
		rep.EntityDistribution[e.Label]++
	}

	if rep.TokenCount > 0 {
		rep.EntityDensity = float64(rep.EntityCount) / float64(rep.TokenCount)
	}

	total := 0
	for _, s := range a.Sentences {
		n := s.Len()
		rep.SentenceLengths = append(rep.SentenceLengths, n)
		total += n
	}
	if len(rep.SentenceLengths) > 0 {
		rep.AvgSentenceLength = float64(total) / float64(len(rep.SentenceLengths))
	}

	for _, e := range a.Entities {
		rep.EntityTokenLengths = append(rep.EntityTokenLengths, tokensWithin(a.Tokens, e))
	}

	return rep
}

// tokensWithin counts the tokens whose byte range overlaps the span.
func tokensWithin(tokens []model.Token, sp model.Span) int {
	n := 0
	for _, t := range tokens {
		if t.Start < sp.End && t.End > sp.Start {
			n++
		}
	}
	return n
}
