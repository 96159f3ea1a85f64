package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/carebridge/symptomdesk/internal/api/response"
	"github.com/carebridge/symptomdesk/pkg/models"
)

// maxSymptomBytes bounds the request body; narratives are short free text.
const maxSymptomBytes = 64 << 10

// Analyzer defines the interface the analyze handler depends on. Analyze
// never fails: backend and schema errors come back as a failure-shaped
// result.
type Analyzer interface {
	Analyze(ctx context.Context, symptoms string, directory []models.PhysicianRecord) *models.AnalysisResult
}

// DirectoryLoader supplies the physician directory for a request.
type DirectoryLoader interface {
	Load(ctx context.Context) []models.PhysicianRecord
}

// NewAnalyzeHandler returns an http.HandlerFunc for POST /api/v1/analyze.
// Empty symptom text is a caller-side validation error; everything past that
// point returns 200 with either a successful or failure-shaped result.
func NewAnalyzeHandler(svc Analyzer, dir DirectoryLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Symptoms string `json:"symptoms"`
		}
		body := http.MaxBytesReader(w, r.Body, maxSymptomBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		if strings.TrimSpace(req.Symptoms) == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
				"symptoms must not be empty", nil)
			return
		}

		// The narrative is passed on verbatim; only the surrounding JSON
		// transport is decoded here.
		result := svc.Analyze(r.Context(), req.Symptoms, dir.Load(r.Context()))
		response.JSON(w, result)
	}
}
