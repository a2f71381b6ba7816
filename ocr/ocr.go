//go:build ocr

// Package ocr extracts text from scanned images using the Tesseract engine.
//
// This package wraps Tesseract via gosseract and is compiled only with the
// "ocr" build tag. It requires Tesseract to be installed on the system. On
// macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Without the tag the package compiles to stubs whose constructors return
// ErrNotEnabled.
package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/tiff"
)

// ErrNotEnabled is returned when OCR support was not compiled in. It is
// declared in both builds so callers can test against it regardless of tags.
var ErrNotEnabled = errors.New("ocr support not compiled in; rebuild with -tags ocr")

// Engine runs optical character recognition over images.
type Engine struct {
	client *gosseract.Client
}

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

// New creates an OCR engine. Close it when no longer needed to release
// Tesseract resources.
func New(opts ...Option) (*Engine, error) {
	cfg := config{languages: []string{"eng"}}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(cfg.languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting languages: %w", err)
	}

	return &Engine{client: client}, nil
}

// Close releases Tesseract resources. Safe to call on a nil engine.
func (e *Engine) Close() error {
	if e == nil || e.client == nil {
		return nil
	}
	return e.client.Close()
}

// Image recognizes the text in an image. PNG and JPEG data is passed to
// Tesseract as is; TIFF is transcoded to PNG first since Tesseract builds
// vary in TIFF support. Leading and trailing whitespace is trimmed.
func (e *Engine) Image(data []byte) (string, error) {
	data, err := normalize(data)
	if err != nil {
		return "", err
	}

	if err := e.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing image: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// normalize transcodes TIFF input to PNG and passes everything else through.
func normalize(data []byte) ([]byte, error) {
	if !isTIFF(data) {
		return data, nil
	}

	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding TIFF: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("re-encoding TIFF as PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isTIFF reports whether data starts with a TIFF header, little endian
// ("II*\0") or big endian ("MM\0*").
func isTIFF(data []byte) bool {
	return len(data) >= 4 &&
		(bytes.Equal(data[:4], []byte("II*\x00")) || bytes.Equal(data[:4], []byte("MM\x00*")))
}
