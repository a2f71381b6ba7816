//go:build !onnx

package pipeline

import (
	"errors"
	"testing"
)

func TestNewONNXReturnsErrNotEnabled(t *testing.T) {
	rec, err := NewONNX("/models/ner")
	if !errors.Is(err, ErrONNXNotEnabled) {
		t.Errorf("NewONNX error = %v; want ErrONNXNotEnabled", err)
	}
	if rec != nil {
		t.Error("NewONNX returned a non-nil recognizer without onnx support")
	}
}

func TestONNXStubProcess(t *testing.T) {
	var rec *ONNX
	if _, err := rec.Process("text"); !errors.Is(err, ErrONNXNotEnabled) {
		t.Errorf("Process error = %v; want ErrONNXNotEnabled", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("Close on nil recognizer returned %v", err)
	}
}
