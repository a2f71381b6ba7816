//go:build onnx

package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/tsawler/rubrica/model"
)

// ErrONNXNotEnabled is returned when the transformer recognizer was not
// compiled in. It is declared in both builds so callers can test against it
// regardless of tags.
var ErrONNXNotEnabled = errors.New("onnx support not compiled in; rebuild with -tags onnx")

var _ Recognizer = (*ONNX)(nil)

// onnxLabels maps CoNLL-style model labels to registry labels.
var onnxLabels = map[string]string{
	"PER":    "PERSON",
	"PERSON": "PERSON",
	"LOC":    "PLACE",
	"GPE":    "PLACE",
	"ORG":    "ORG",
}

// ONNX recognizes entities with a transformer token-classification model run
// through hugot. The model directory must hold the tokenizer files and a
// model.onnx export. Close releases the session.
type ONNX struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewONNX loads a token-classification model from modelPath.
func NewONNX(modelPath string) (*ONNX, error) {
	if modelPath == "" {
		return nil, errors.New("model path is required")
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("creating hugot session: %w", err)
	}

	cfg := hugot.TokenClassificationConfig{
		ModelPath:    modelPath,
		OnnxFilename: "model.onnx",
		Name:         "ner:" + modelPath,
	}
	p, err := hugot.NewPipeline(session, cfg)
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("creating token classification pipeline: %w", err)
	}
	// Group adjacent subword tokens into whole entities.
	p.AggregationStrategy = "SIMPLE"

	return &ONNX{session: session, pipeline: p}, nil
}

// Close releases the hugot session.
func (o *ONNX) Close() error {
	if o == nil || o.session == nil {
		return nil
	}
	return o.session.Destroy()
}

// Labels returns the registry labels for the conventional CoNLL tag set.
// Models trained on other tag sets pass their labels through unmapped.
func (o *ONNX) Labels() []string {
	return []string{"MISC", "ORG", "PERSON", "PLACE"}
}

// Process classifies text. Hugot reports byte offsets directly; entities are
// sorted by Start and overlapping or out-of-bounds ones dropped. Tokens and
// sentences use the same lightweight tokenization as the static recognizer,
// since the pipeline does not expose its own.
func (o *ONNX) Process(text string) (*model.Annotation, error) {
	out, err := o.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("running token classification: %w", err)
	}

	toks := tokenize(text)
	ann := &model.Annotation{
		Text:      text,
		Tokens:    toks,
		Sentences: sentences(toks),
	}

	if len(out.Entities) == 0 {
		return ann, nil
	}

	ents := make([]pipelines.Entity, len(out.Entities[0]))
	copy(ents, out.Entities[0])
	sort.SliceStable(ents, func(i, j int) bool { return ents[i].Start < ents[j].Start })

	cursor := 0
	for _, e := range ents {
		start, end := int(e.Start), int(e.End)
		if start < cursor || end <= start || end > len(text) {
			continue
		}
		ann.Entities = append(ann.Entities, model.Span{
			Start: start,
			End:   end,
			Label: onnxLabel(e.Entity),
		})
		cursor = end
	}

	return ann, nil
}

// onnxLabel maps a model label, optionally B-/I- prefixed, to its registry
// label. Unknown labels pass through uppercased.
func onnxLabel(raw string) string {
	l := strings.ToUpper(raw)
	l = strings.TrimPrefix(l, "B-")
	l = strings.TrimPrefix(l, "I-")
	if mapped, ok := onnxLabels[l]; ok {
		return mapped
	}
	return l
}
