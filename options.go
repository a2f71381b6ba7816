package rubrica

import (
	"github.com/tsawler/rubrica/pipeline"
	"github.com/tsawler/rubrica/style"
)

// Option configures an Engine at construction time.
type Option func(*config)

// config holds the construction-time configuration an Engine is built from.
type config struct {
	rec pipeline.Recognizer
	reg *style.Registry
}

// defaultConfig returns the default engine configuration: the prose
// recognizer and the built-in style registry.
func defaultConfig() config {
	return config{
		rec: pipeline.NewProse(),
		reg: style.NewRegistry(),
	}
}

// WithRecognizer replaces the default prose recognizer.
//
// Example:
//
//	eng, err := rubrica.New(rubrica.WithRecognizer(myRecognizer))
func WithRecognizer(rec pipeline.Recognizer) Option {
	return func(c *config) { c.rec = rec }
}

// WithRegistry replaces the default style registry, changing the colors
// used for HTML rendering and DOCX export.
//
// Example:
//
//	reg := style.NewRegistry()
//	reg.Set("CASE_CITATION", "navy", style.RGB{R: 0, G: 0, B: 128})
//	eng, err := rubrica.New(rubrica.WithRegistry(reg))
func WithRegistry(reg *style.Registry) Option {
	return func(c *config) { c.reg = reg }
}
