// Package docx provides DOCX (Office Open XML) reading and writing.
//
// The reader extracts plain text from uploaded documents; the writer
// assembles documents from styled runs (bold, colored entity text) and
// serializes them as a minimal OOXML package.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to DOCX document content.
type Reader struct {
	document *documentXML
}

// Read parses a DOCX document from its raw bytes.
func Read(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{}

	if err := validate(zr); err != nil {
		return nil, err
	}

	doc, err := getFileContent(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(doc, r.document); err != nil {
		return nil, fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	return r, nil
}

// validate checks that required DOCX parts exist.
func validate(zr *zip.Reader) error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range zr.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func getFileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// Text extracts and returns all text content from the document. Paragraphs
// are joined with newlines; tables are flattened row by row with cells
// joined by tabs.
func (r *Reader) Text() (string, error) {
	if r.document == nil || r.document.Body == nil {
		return "", fmt.Errorf("document not parsed")
	}

	var result strings.Builder
	for i, para := range r.document.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(paragraphText(para))
	}

	for _, tbl := range r.document.Body.Tables {
		for _, row := range tbl.Rows {
			if result.Len() > 0 {
				result.WriteString("\n")
			}
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				var cellParts []string
				for _, para := range cell.Paragraphs {
					cellParts = append(cellParts, paragraphText(para))
				}
				cells = append(cells, strings.Join(cellParts, " "))
			}
			result.WriteString(strings.Join(cells, "\t"))
		}
	}

	return result.String(), nil
}

// paragraphText joins the text of a paragraph's runs, including runs nested
// in hyperlinks.
func paragraphText(p paragraphXML) string {
	var parts []string
	for _, run := range p.Runs {
		if t := runText(run); t != "" {
			parts = append(parts, t)
		}
	}
	for _, link := range p.Hyperlinks {
		for _, run := range link.Runs {
			if t := runText(run); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, "")
}

// runText extracts text from a run element.
func runText(run runXML) string {
	var parts []string

	for _, t := range run.Text {
		parts = append(parts, t.Value)
	}

	// Handle tab characters
	for range run.Tabs {
		parts = append(parts, "\t")
	}

	// Handle breaks
	for _, br := range run.Breaks {
		if br.Type == "page" {
			parts = append(parts, "\n\n")
		} else {
			parts = append(parts, "\n")
		}
	}

	return strings.Join(parts, "")
}
