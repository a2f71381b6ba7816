package pipeline

import (
	"reflect"
	"testing"

	"github.com/tsawler/rubrica/model"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []model.Token
	}{
		{
			name: "simple",
			text: "Dracula is a novel.",
			want: []model.Token{
				{Text: "Dracula", Start: 0, End: 7},
				{Text: "is", Start: 8, End: 10},
				{Text: "a", Start: 11, End: 12},
				{Text: "novel.", Start: 13, End: 19},
			},
		},
		{
			name: "surrounding whitespace",
			text: "  one\ttwo\n",
			want: []model.Token{
				{Text: "one", Start: 2, End: 5},
				{Text: "two", Start: 6, End: 9},
			},
		},
		{
			name: "multibyte",
			text: "Brontë wrote",
			want: []model.Token{
				{Text: "Brontë", Start: 0, End: 7},
				{Text: "wrote", Start: 8, End: 13},
			},
		},
		{name: "empty", text: "", want: nil},
		{name: "only whitespace", text: " \n\t ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for _, tok := range got {
				if tt.text[tok.Start:tok.End] != tok.Text {
					t.Errorf("token %q offsets [%d,%d) slice to %q", tok.Text, tok.Start, tok.End, tt.text[tok.Start:tok.End])
				}
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []model.Sentence
	}{
		{
			name: "two sentences",
			text: "It is late. Go home!",
			want: []model.Sentence{{Start: 0, End: 3}, {Start: 3, End: 5}},
		},
		{
			name: "no terminator",
			text: "a trailing fragment",
			want: []model.Sentence{{Start: 0, End: 3}},
		},
		{
			name: "terminator then fragment",
			text: "Done? almost",
			want: []model.Sentence{{Start: 0, End: 1}, {Start: 1, End: 2}},
		},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sentences(tokenize(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
