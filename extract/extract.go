// Package extract turns uploaded document bytes into plain text.
//
// It dispatches on the filename extension via format.Detect, delegates to
// the matching reader (pdfdoc or docx), and normalizes the result to
// Unicode NFC with surrounding whitespace trimmed.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/rubrica/docx"
	"github.com/tsawler/rubrica/format"
	"github.com/tsawler/rubrica/pdfdoc"
)

var (
	// ErrUnsupportedFormat reports a filename that is neither PDF nor DOCX.
	// No extraction is attempted.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyInput reports zero-length input data.
	ErrEmptyInput = errors.New("empty input data")

	// ErrNoText reports a document that parsed but contains no extractable
	// text, such as a scanned PDF. Callers built with the "ocr" tag may
	// retry such documents through the ocr package.
	ErrNoText = errors.New("document contains no extractable text")
)

// Text extracts the plain text of a document from its raw bytes, choosing
// the reader from the filename extension.
func Text(filename string, data []byte) (string, error) {
	f := format.Detect(filename)
	if f == format.Unknown {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	if len(data) == 0 {
		return "", ErrEmptyInput
	}

	var (
		text string
		err  error
	)
	switch f {
	case format.PDF:
		text, err = pdfdoc.Text(data)
	case format.DOCX:
		var r *docx.Reader
		if r, err = docx.Read(data); err == nil {
			text, err = r.Text()
		}
	}
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", f, err)
	}

	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
