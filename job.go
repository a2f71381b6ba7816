package rubrica

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tsawler/rubrica/docx"
	"github.com/tsawler/rubrica/model"
	"github.com/tsawler/rubrica/overlay"
	"github.com/tsawler/rubrica/render"
	"github.com/tsawler/rubrica/stats"
)

// ErrEmptyText is returned by terminal operations of a Job created from
// empty or whitespace-only text.
var ErrEmptyText = errors.New("no text provided")

// annotation caches one recognizer pass. Every Job cloned from the same
// Text call shares the cache, so branching a chain never re-runs
// recognition.
type annotation struct {
	once sync.Once
	ann  *model.Annotation
	err  error
}

// Job is a fluent analysis chain over a single text. Each configuration
// method returns a new Job instance, making it safe to store a Job and
// branch it. Terminal operations are Segments, HTML, Document, and Stats.
type Job struct {
	eng  *Engine
	text string

	// Selection state: selectAll is the full-overlay default for chains
	// that never call Select.
	selected  []string
	selectAll bool

	// Shared recognition result (fail-fast err set at creation).
	shared *annotation
	err    error
}

// Text starts a Job over the given text. The text is analyzed lazily, on
// the first terminal operation of the chain.
//
// Example:
//
//	segs, err := eng.Text("Dracula was written by Bram Stoker.").Segments()
func (e *Engine) Text(text string) *Job {
	j := &Job{
		eng:       e,
		text:      text,
		selectAll: true,
		shared:    &annotation{},
	}
	if strings.TrimSpace(text) == "" {
		j.err = ErrEmptyText
	}
	return j
}

// clone creates a copy of the Job that shares the cached recognition result.
func (j *Job) clone() *Job {
	newJob := &Job{
		eng:       j.eng,
		text:      j.text,
		selectAll: j.selectAll,
		shared:    j.shared,
		err:       j.err,
	}
	if j.selected != nil {
		newJob.selected = make([]string, len(j.selected))
		copy(newJob.selected, j.selected)
	}
	return newJob
}

// Select restricts the overlay to the given labels. Calling Select replaces
// any earlier selection. Select with no arguments selects nothing, leaving
// the whole text plain; a Job that never calls Select keeps every label.
//
// Example:
//
//	html, err := eng.Text(text).Select("PERSON", "PLACE").HTML()
func (j *Job) Select(labels ...string) *Job {
	newJob := j.clone()
	newJob.selectAll = false
	newJob.selected = make([]string, len(labels))
	copy(newJob.selected, labels)
	return newJob
}

// annotate runs the recognizer once per chain and caches the result.
func (j *Job) annotate() (*model.Annotation, error) {
	j.shared.once.Do(func() {
		ann, err := j.eng.rec.Process(j.text)
		if err != nil {
			j.shared.err = fmt.Errorf("recognizing entities: %w", err)
			return
		}
		j.shared.ann = ann
	})
	return j.shared.ann, j.shared.err
}

// spans returns the annotation's entity spans under the current selection.
func (j *Job) spans(ann *model.Annotation) []model.Span {
	if j.selectAll {
		return ann.Entities
	}
	return overlay.Normalize(ann.Entities, j.selected)
}

// Segments runs recognition and returns the segmentation of the text under
// the current selection: a lossless partition whose entity segments carry
// their labels.
func (j *Job) Segments() ([]model.Segment, error) {
	if j.err != nil {
		return nil, j.err
	}

	ann, err := j.annotate()
	if err != nil {
		return nil, err
	}

	return overlay.Segment(j.text, j.spans(ann))
}

// HTML runs recognition and renders the text as an HTML fragment with the
// selected entities highlighted in their registry colors.
func (j *Job) HTML() (string, error) {
	segs, err := j.Segments()
	if err != nil {
		return "", err
	}
	return render.HTML(segs, j.eng.reg), nil
}

// Document runs recognition and builds a DOCX document in which the
// selected entities are bold and colored per the registry.
func (j *Job) Document() (*docx.Document, error) {
	segs, err := j.Segments()
	if err != nil {
		return nil, err
	}
	return docx.FromSegments(segs, j.eng.reg), nil
}

// Stats runs recognition and computes descriptive statistics over the full
// annotation. The label selection does not apply: statistics always cover
// every recognized entity.
func (j *Job) Stats() (*stats.Report, error) {
	if j.err != nil {
		return nil, j.err
	}

	ann, err := j.annotate()
	if err != nil {
		return nil, err
	}

	return stats.Analyze(ann), nil
}
