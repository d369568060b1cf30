package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/ats-scorer/internal/types"
)

var validate = validator.New()

// ScoreRequest represents the request body for /score.
type ScoreRequest struct {
	Resume         *types.ResumeData           `json:"resume" validate:"required"`
	JobDescription string                      `json:"job_description" validate:"max=200000"`
	Keywords       *types.ExtensionKeywordData `json:"keywords,omitempty"`
}

// ScoreResponse represents the response for /score.
type ScoreResponse struct {
	ReportID string            `json:"report_id"`
	ScoredAt string            `json:"scored_at"`
	Result   types.ScoreResult `json:"result"`
}

// handleScore computes a compatibility report for the posted resume and job
// description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Callers may omit sections entirely; the engine expects a slice.
	if req.Resume.Sections == nil {
		req.Resume.Sections = []types.ResumeSection{}
	}

	result := s.engine.Score(*req.Resume, req.JobDescription, req.Keywords)

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		ReportID: uuid.New().String(),
		ScoredAt: time.Now().UTC().Format(time.RFC3339),
		Result:   result,
	})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
