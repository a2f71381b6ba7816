// Package rubrica provides a fluent API for highlighting named entities in
// text and computing descriptive statistics over the recognition result.
//
// Basic usage:
//
//	eng, err := rubrica.New()
//	if err != nil {
//	    // handle error
//	}
//	html, err := eng.Text("Dracula was written by Bram Stoker.").
//	    Select("PERSON").
//	    HTML()
//
// A Job can be branched: configuration methods return new instances, and the
// underlying recognition runs only once per text.
//
//	job := eng.Text(novel)
//	people, _ := job.Select("PERSON").Segments()
//	places, _ := job.Select("PLACE").Segments()
//	report, _ := job.Stats()
//
// For advanced use cases, the lower-level overlay, render, stats, and docx
// packages are also available.
package rubrica

import (
	"errors"

	"github.com/tsawler/rubrica/extract"
	"github.com/tsawler/rubrica/pipeline"
	"github.com/tsawler/rubrica/style"
)

// Engine owns the recognizer and styling configuration. It is immutable
// after New and safe for concurrent use; one Engine serves any number of
// Jobs.
type Engine struct {
	rec    pipeline.Recognizer
	reg    *style.Registry
	labels []string
}

// New creates an Engine. Without options it uses the prose recognizer and
// the built-in style registry.
//
// Example:
//
//	eng, err := rubrica.New(rubrica.WithRecognizer(rec))
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rec == nil {
		return nil, errors.New("recognizer must not be nil")
	}
	if cfg.reg == nil {
		return nil, errors.New("style registry must not be nil")
	}

	// The recognizer is queried once; Labels serves the cached copy.
	labels := append([]string(nil), cfg.rec.Labels()...)

	return &Engine{
		rec:    cfg.rec,
		reg:    cfg.reg,
		labels: labels,
	}, nil
}

// Labels returns the entity labels the engine's recognizer can produce.
// Callers receive a fresh copy.
func (e *Engine) Labels() []string {
	out := make([]string, len(e.labels))
	copy(out, e.labels)
	return out
}

// Registry returns the style registry used for rendering and export.
func (e *Engine) Registry() *style.Registry {
	return e.reg
}

// ExtractText extracts plain text from an uploaded document, choosing the
// reader from the filename extension. PDF and DOCX are supported; see the
// extract package for the sentinel errors.
//
// Example:
//
//	text, err := eng.ExtractText("report.pdf", data)
func (e *Engine) ExtractText(filename string, data []byte) (string, error) {
	return extract.Text(filename, data)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	html := rubrica.Must(eng.Text(text).HTML())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
