package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/rubrica/model"
	"github.com/tsawler/rubrica/style"
)

// Static OOXML package parts. Only word/document.xml varies per document.
const (
	contentTypesPart = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	relsPart = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`
)

// Document is an in-memory word-processing document assembled from styled
// runs. Build it with NewDocument or FromSegments, then serialize it with
// WriteTo or Save.
type Document struct {
	paragraphs []*Paragraph
}

// Paragraph is a sequence of runs.
type Paragraph struct {
	runs []*Run
}

// Run is a unit of paragraph text carrying its own formatting.
type Run struct {
	text  string
	bold  bool
	color string // hex RRGGBB, empty for default
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddParagraph appends an empty paragraph and returns it.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.paragraphs = append(d.paragraphs, p)
	return p
}

// AddRun appends a text run to the paragraph and returns it for styling.
//
// Example:
//
//	p.AddRun("Bram Stoker").Bold().Color("32CD32")
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.runs = append(p.runs, r)
	return r
}

// Bold marks the run bold.
func (r *Run) Bold() *Run {
	r.bold = true
	return r
}

// Color sets the run's text color as an RRGGBB hex string.
func (r *Run) Color(hex string) *Run {
	r.color = hex
	return r
}

// Text returns the run's text.
func (r *Run) Text() string { return r.text }

// IsBold reports whether the run is bold.
func (r *Run) IsBold() bool { return r.bold }

// ColorHex returns the run's color, or "" for default styling.
func (r *Run) ColorHex() string { return r.color }

// Runs returns the paragraph's runs in order.
func (p *Paragraph) Runs() []*Run {
	return append([]*Run(nil), p.runs...)
}

// Paragraphs returns the document's paragraphs in order.
func (d *Document) Paragraphs() []*Paragraph {
	return append([]*Paragraph(nil), d.paragraphs...)
}

// FromSegments builds a single-paragraph document mirroring the segment
// sequence: entity segments become bold runs in the registry's export color,
// plain segments become unstyled runs. An empty segment list still yields
// one (empty) paragraph so the output opens as a valid document.
func FromSegments(segments []model.Segment, reg *style.Registry) *Document {
	doc := NewDocument()
	p := doc.AddParagraph()
	for _, seg := range segments {
		run := p.AddRun(seg.Text)
		if seg.Entity() {
			run.Bold().Color(reg.Export(seg.Label).Hex())
		}
	}
	return doc
}

// Marshal structures for word/document.xml. Prefixed names are written
// literally; the w namespace is declared on the root element.

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Paragraphs []wParagraph `xml:"w:p"`
}

type wParagraph struct {
	Runs []wRun `xml:"w:r"`
}

type wRun struct {
	Props *wRunProps `xml:"w:rPr,omitempty"`
	Text  wText      `xml:"w:t"`
}

type wRunProps struct {
	Bold  *wEmpty `xml:"w:b,omitempty"`
	Color *wColor `xml:"w:color,omitempty"`
}

type wEmpty struct{}

type wColor struct {
	Val string `xml:"w:val,attr"`
}

type wText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

const nsWordML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentXMLBytes serializes the document body part.
func (d *Document) documentXMLBytes() ([]byte, error) {
	doc := wDocument{NS: nsWordML}
	for _, p := range d.paragraphs {
		wp := wParagraph{}
		for _, r := range p.runs {
			wr := wRun{Text: wText{Space: "preserve", Value: r.text}}
			if r.bold || r.color != "" {
				props := &wRunProps{}
				if r.bold {
					props.Bold = &wEmpty{}
				}
				if r.color != "" {
					props.Color = &wColor{Val: r.color}
				}
				wr.Props = props
			}
			wp.Runs = append(wp.Runs, wr)
		}
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, wp)
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling document.xml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// WriteTo serializes the document as a complete OOXML package. It writes
// every part or returns an error; the zip stream is finalized on success
// only, so a failed write never yields a readable partial document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	zw := zip.NewWriter(cw)

	docPart, err := d.documentXMLBytes()
	if err != nil {
		zw.Close()
		return cw.n, err
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesPart)},
		{"_rels/.rels", []byte(relsPart)},
		{"word/document.xml", docPart},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			zw.Close()
			return cw.n, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			zw.Close()
			return cw.n, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finalizing package: %w", err)
	}
	return cw.n, nil
}

// Save writes the document to path. On write failure the file is removed so
// no partial document is left behind.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// countWriter tracks bytes written for the io.WriterTo contract.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
