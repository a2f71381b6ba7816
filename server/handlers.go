package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/tsawler/rubrica/extract"
	"github.com/tsawler/rubrica/format"
)

// textRequest is the JSON body shared by /filter, /save, and /stats. A
// missing selected_entities field selects nothing, matching an empty list.
type textRequest struct {
	Text             string   `json:"text"`
	SelectedEntities []string `json:"selected_entities"`
}

type filterResponse struct {
	HTML string `json:"html"`
}

type uploadResponse struct {
	Text string `json:"text"`
}

type saveResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path"`
}

type labelsResponse struct {
	Labels []string `json:"labels"`
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	html, err := s.engine.Text(req.Text).Select(req.SelectedEntities...).HTML()
	if err != nil {
		s.jobError(w, err, "No text provided")
		return
	}
	writeJSON(w, http.StatusOK, filterResponse{HTML: html})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file provided"})
		return
	}

	// A file input submitted empty arrives as a form value with no
	// filename, so the two cases get distinct messages.
	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		msg := "No file provided"
		if _, ok := r.MultipartForm.Value["file"]; ok {
			msg = "No selected file"
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}
	header := files[0]

	if format.Detect(header.Filename) == format.Unknown {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid file format. Please upload a PDF or DOCX."})
		return
	}

	f, err := header.Open()
	if err != nil {
		s.logger.Error("opening upload", "err", err, "filename", header.Filename)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.logger.Error("reading upload", "err", err, "filename", header.Filename)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read uploaded file"})
		return
	}

	// A document that parses but contains no text is not a failure: the
	// caller gets an empty string to edit, not an error.
	text, err := s.engine.ExtractText(header.Filename, data)
	if err != nil && !errors.Is(err, extract.ErrNoText) {
		s.logger.Error("extracting text", "err", err, "filename", header.Filename)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to extract text"})
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{Text: text})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	doc, err := s.engine.Text(req.Text).Select(req.SelectedEntities...).Document()
	if err != nil {
		s.jobError(w, err, "No content to save")
		return
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		s.logger.Error("encoding artifact", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save document"})
		return
	}

	// Single attempt: a failed write surfaces as an error, never as a
	// success pointing at a partial artifact.
	name := fmt.Sprintf("results-%s.docx", uuid.NewString())
	location, err := s.store.Save(r.Context(), name, buf.Bytes())
	if err != nil {
		s.logger.Error("saving artifact", "err", err, "name", name)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save document"})
		return
	}
	writeJSON(w, http.StatusOK, saveResponse{Success: true, FilePath: location})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	report, err := s.engine.Text(req.Text).Stats()
	if err != nil {
		s.jobError(w, err, "No text provided")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use GET"})
		return
	}
	writeJSON(w, http.StatusOK, labelsResponse{Labels: s.engine.Labels()})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use GET"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}
