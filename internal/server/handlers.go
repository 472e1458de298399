package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ats/internal/explain"
	"github.com/jonathan/resume-ats/internal/extractor"
	"github.com/jonathan/resume-ats/internal/ingest"
	"github.com/jonathan/resume-ats/internal/types"
)

// maxBodyBytes caps request bodies; resume text is small.
const maxBodyBytes = 1 << 20

// ExtractRequest is the POST /extract body. Exactly one of Text or HTML
// should be set.
type ExtractRequest struct {
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// ExtractResponse carries the structured record.
type ExtractResponse struct {
	ID     string             `json:"id"`
	Record types.ResumeRecord `json:"record"`
}

// ScoreRequest is the POST /score body. Callers either send raw text to be
// extracted first, or a previously extracted (possibly enhanced) record.
type ScoreRequest struct {
	Text       string              `json:"text,omitempty"`
	HTML       string              `json:"html,omitempty"`
	Record     *types.ResumeRecord `json:"record,omitempty"`
	TargetRole string              `json:"target_role,omitempty"`
}

// ScoreResponse carries the breakdown plus the flat snapshot an external
// tracking collaborator can persist under the response id.
type ScoreResponse struct {
	ID        string               `json:"id"`
	Record    *types.ResumeRecord  `json:"record,omitempty"`
	Breakdown types.ScoreBreakdown `json:"breakdown"`
	Explained []explain.Entry      `json:"explained"`
	Snapshot  map[string]float64   `json:"snapshot"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	text, err := s.resolveText(req.Text, req.HTML)
	if err != nil {
		writeError(w, err)
		return
	}

	record := extractor.Extract(text, s.dict)
	writeJSON(w, http.StatusOK, ExtractResponse{
		ID:     uuid.New().String(),
		Record: record,
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var record types.ResumeRecord
	var extracted *types.ResumeRecord
	switch {
	case req.Record != nil:
		if err := req.Record.Validate(); err != nil {
			writeError(w, &ErrBadRequest{Message: "invalid record: " + err.Error()})
			return
		}
		record = *req.Record
	default:
		text, err := s.resolveText(req.Text, req.HTML)
		if err != nil {
			writeError(w, err)
			return
		}
		record = extractor.Extract(text, s.dict)
		extracted = &record
	}

	breakdown := s.scorer.Score(&record, req.TargetRole)
	writeJSON(w, http.StatusOK, ScoreResponse{
		ID:        uuid.New().String(),
		Record:    extracted,
		Breakdown: breakdown,
		Explained: explain.Explain(breakdown),
		Snapshot:  explain.Snapshot(breakdown),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":             "ok",
		"dictionary_version": s.dict.Version,
	})
}

// resolveText picks the request's input text, converting HTML when that is
// what the caller sent. Plain text is cleaned before extraction.
func (s *Server) resolveText(text, html string) (string, error) {
	switch {
	case text != "" && html != "":
		return "", &ErrBadRequest{Message: "send either text or html, not both"}
	case html != "":
		converted, err := ingest.FromHTML(html)
		if err != nil {
			return "", &ErrBadRequest{Message: err.Error()}
		}
		return converted, nil
	case text != "":
		return ingest.CleanText(text), nil
	default:
		return "", &ErrBadRequest{Message: "text or html is required"}
	}
}

func readJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return &ErrBadRequest{Message: "failed to read body"}
	}
	if len(body) == 0 {
		return &ErrBadRequest{Message: "empty body"}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrBadRequest{Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
