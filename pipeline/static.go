package pipeline

import "github.com/tsawler/rubrica/model"

var _ Recognizer = (*Static)(nil)

// Static returns canned annotations keyed by exact input text. Texts without
// a canned annotation get an empty entity list over a whitespace
// tokenization. It backs unit tests and the server's offline mode.
type Static struct {
	labels []string
	anns   map[string]*model.Annotation
}

// NewStatic creates a static recognizer advertising the given labels. The
// inputs are copied; later mutation by the caller does not affect the
// recognizer.
func NewStatic(labels []string, anns map[string]*model.Annotation) *Static {
	s := &Static{
		labels: make([]string, len(labels)),
		anns:   make(map[string]*model.Annotation, len(anns)),
	}
	copy(s.labels, labels)
	for text, ann := range anns {
		s.anns[text] = ann
	}
	return s
}

// Labels returns the advertised label list.
func (s *Static) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Process returns the canned annotation for text, or an entity-free
// annotation over a whitespace tokenization when none is registered.
func (s *Static) Process(text string) (*model.Annotation, error) {
	if ann, ok := s.anns[text]; ok {
		return ann, nil
	}
	toks := tokenize(text)
	return &model.Annotation{
		Text:      text,
		Tokens:    toks,
		Sentences: sentences(toks),
	}, nil
}
