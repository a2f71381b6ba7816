//go:build !onnx

package pipeline

import (
	"errors"

	"github.com/tsawler/rubrica/model"
)

// ErrONNXNotEnabled is returned when the transformer recognizer was not
// compiled in. It is declared in both builds so callers can test against it
// regardless of tags.
var ErrONNXNotEnabled = errors.New("onnx support not compiled in; rebuild with -tags onnx")

var _ Recognizer = (*ONNX)(nil)

// ONNX is a placeholder for the transformer recognizer.
type ONNX struct{}

// NewONNX returns ErrONNXNotEnabled.
func NewONNX(modelPath string) (*ONNX, error) {
	return nil, ErrONNXNotEnabled
}

// Close is a no-op. Safe to call on a nil recognizer.
func (o *ONNX) Close() error { return nil }

// Labels returns nil.
func (o *ONNX) Labels() []string { return nil }

// Process returns ErrONNXNotEnabled.
func (o *ONNX) Process(text string) (*model.Annotation, error) {
	return nil, ErrONNXNotEnabled
}
