package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/tsawler/rubrica/model"
)

// tokensFor builds whitespace tokens with byte offsets for test texts.
func tokensFor(t *testing.T, text string, words ...string) []model.Token {
	t.Helper()
	var tokens []model.Token
	cursor := 0
	for _, w := range words {
		start := indexFrom(text, w, cursor)
		if start < 0 {
			t.Fatalf("word %q not found in %q after byte %d", w, text, cursor)
		}
		tokens = append(tokens, model.Token{Text: w, Start: start, End: start + len(w)})
		cursor = start + len(w)
	}
	return tokens
}

func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestAnalyze(t *testing.T) {
	text := "Dracula was written by Bram Stoker. It is a novel."
	ann := &model.Annotation{
		Text: text,
		Entities: []model.Span{
			{Start: 0, End: 7, Label: "CHARACTER"},
			{Start: 23, End: 34, Label: "PERSON"},
		},
		Tokens: tokensFor(t, text,
			"Dracula", "was", "written", "by", "Bram", "Stoker", ".",
			"It", "is", "a", "novel", "."),
		Sentences: []model.Sentence{
			{Start: 0, End: 7},
			{Start: 7, End: 12},
		},
	}

	rep := Analyze(ann)

	if rep.EntityCount != 2 {
		t.Errorf("EntityCount = %d, want 2", rep.EntityCount)
	}
	wantDist := map[string]int{"CHARACTER": 1, "PERSON": 1}
	if !reflect.DeepEqual(rep.EntityDistribution, wantDist) {
		t.Errorf("EntityDistribution = %v, want %v", rep.EntityDistribution, wantDist)
	}
	if rep.TokenCount != 12 {
		t.Errorf("TokenCount = %d, want 12", rep.TokenCount)
	}
	if want := 2.0 / 12.0; math.Abs(rep.EntityDensity-want) > 1e-9 {
		t.Errorf("EntityDensity = %v, want %v", rep.EntityDensity, want)
	}
	if want := []int{7, 5}; !reflect.DeepEqual(rep.SentenceLengths, want) {
		t.Errorf("SentenceLengths = %v, want %v", rep.SentenceLengths, want)
	}
	if rep.AvgSentenceLength != 6 {
		t.Errorf("AvgSentenceLength = %v, want 6", rep.AvgSentenceLength)
	}
	// "Dracula" is one token, "Bram Stoker" two.
	if want := []int{1, 2}; !reflect.DeepEqual(rep.EntityTokenLengths, want) {
		t.Errorf("EntityTokenLengths = %v, want %v", rep.EntityTokenLengths, want)
	}
}

func TestAnalyzeDistributionGrouping(t *testing.T) {
	ann := &model.Annotation{
		Text: "abcdefghijklm",
		Entities: []model.Span{
			{Start: 0, End: 3, Label: "ORG"},
			{Start: 3, End: 6, Label: "ORG"},
			{Start: 10, End: 13, Label: "PLACE"},
		},
		Tokens: []model.Token{
			{Text: "abc", Start: 0, End: 3},
			{Text: "def", Start: 3, End: 6},
			{Text: "ghij", Start: 6, End: 10},
			{Text: "klm", Start: 10, End: 13},
		},
		Sentences: []model.Sentence{
			{Start: 0, End: 2},
			{Start: 2, End: 4},
		},
	}

	rep := Analyze(ann)

	want := map[string]int{"ORG": 2, "PLACE": 1}
	if !reflect.DeepEqual(rep.EntityDistribution, want) {
		t.Errorf("EntityDistribution = %v, want %v", rep.EntityDistribution, want)
	}

	// The distribution must account for every entity.
	sum := 0
	for _, n := range rep.EntityDistribution {
		sum += n
	}
	if sum != rep.EntityCount {
		t.Errorf("distribution sums to %d, want EntityCount %d", sum, rep.EntityCount)
	}
}

func TestAnalyzeZeroGuards(t *testing.T) {
	tests := []struct {
		name string
		ann  *model.Annotation
	}{
		{"empty annotation", &model.Annotation{}},
		{"entities but no tokens", &model.Annotation{
			Entities: []model.Span{{Start: 0, End: 1, Label: "ORG"}},
		}},
		{"tokens but no sentences", &model.Annotation{
			Tokens: []model.Token{{Text: "a", Start: 0, End: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Analyze(tt.ann)
			if len(tt.ann.Tokens) == 0 && rep.EntityDensity != 0 {
				t.Errorf("EntityDensity = %v, want 0 with no tokens", rep.EntityDensity)
			}
			if len(tt.ann.Sentences) == 0 && rep.AvgSentenceLength != 0 {
				t.Errorf("AvgSentenceLength = %v, want 0 with no sentences", rep.AvgSentenceLength)
			}
			if math.IsNaN(rep.EntityDensity) || math.IsInf(rep.EntityDensity, 0) {
				t.Errorf("EntityDensity = %v, want a finite number", rep.EntityDensity)
			}
			if math.IsNaN(rep.AvgSentenceLength) || math.IsInf(rep.AvgSentenceLength, 0) {
				t.Errorf("AvgSentenceLength = %v, want a finite number", rep.AvgSentenceLength)
			}
		})
	}
}

func TestAnalyzeSentenceOrder(t *testing.T) {
	ann := &model.Annotation{
		Tokens: make([]model.Token, 10),
		Sentences: []model.Sentence{
			{Start: 0, End: 5},
			{Start: 5, End: 6},
			{Start: 6, End: 10},
		},
	}

	rep := Analyze(ann)
	if want := []int{5, 1, 4}; !reflect.DeepEqual(rep.SentenceLengths, want) {
		t.Errorf("SentenceLengths = %v, want %v", rep.SentenceLengths, want)
	}
	if want := (5.0 + 1.0 + 4.0) / 3.0; math.Abs(rep.AvgSentenceLength-want) > 1e-9 {
		t.Errorf("AvgSentenceLength = %v, want %v", rep.AvgSentenceLength, want)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	ann := &model.Annotation{
		Text:      "Bram Stoker",
		Entities:  []model.Span{{Start: 0, End: 11, Label: "PERSON"}},
		Tokens:    []model.Token{{Text: "Bram", Start: 0, End: 4}, {Text: "Stoker", Start: 5, End: 11}},
		Sentences: []model.Sentence{{Start: 0, End: 2}},
	}
	want := &model.Annotation{
		Text:      "Bram Stoker",
		Entities:  []model.Span{{Start: 0, End: 11, Label: "PERSON"}},
		Tokens:    []model.Token{{Text: "Bram", Start: 0, End: 4}, {Text: "Stoker", Start: 5, End: 11}},
		Sentences: []model.Sentence{{Start: 0, End: 2}},
	}

	rep := Analyze(ann)
	if !reflect.DeepEqual(ann, want) {
		t.Errorf("Analyze mutated its input: %+v", ann)
	}
	if want := []int{2}; !reflect.DeepEqual(rep.EntityTokenLengths, want) {
		t.Errorf("EntityTokenLengths = %v, want %v", rep.EntityTokenLengths, want)
	}
}
