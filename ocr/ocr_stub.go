//go:build !ocr

// Package ocr extracts text from scanned images using the Tesseract engine.
//
// This is the stub build, compiled when the "ocr" tag is not set. All
// operations return ErrNotEnabled. To enable OCR, install Tesseract and
// rebuild with:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrNotEnabled is returned when OCR support was not compiled in. It is
// declared in both builds so callers can test against it regardless of tags.
var ErrNotEnabled = errors.New("ocr support not compiled in; rebuild with -tags ocr")

// Engine is a placeholder for the Tesseract wrapper.
type Engine struct{}

// Option configures an Engine.
type Option func(*config)

type config struct {
	languages []string
}

// WithLanguages sets the recognition languages in priority order, using
// Tesseract language codes such as "eng" or "fra". The default is English.
func WithLanguages(langs ...string) Option {
	return func(c *config) { c.languages = langs }
}

// New returns ErrNotEnabled.
func New(opts ...Option) (*Engine, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. Safe to call on a nil engine.
func (e *Engine) Close() error { return nil }

// Image returns ErrNotEnabled.
func (e *Engine) Image(data []byte) (string, error) {
	return "", ErrNotEnabled
}
