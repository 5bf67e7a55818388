package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/medicino/medicino/internal/api/middleware"
	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/infrastructure/observability"
)

// DiagnosisService defines the diagnosis operations used by the handler.
type DiagnosisService interface {
	Diagnose(ctx context.Context, userID, symptoms string) (*entities.DiagnosisResult, error)
	History(ctx context.Context, userID string, limit int) ([]*entities.DiagnosisRecord, error)
	SubmitFeedback(ctx context.Context, recordID, userID, feedback string, isAccurate *bool) error
}

// DiagnosisHandler handles symptom analysis and history requests.
type DiagnosisHandler struct {
	service DiagnosisService
	metrics *observability.Metrics
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(service DiagnosisService, metrics *observability.Metrics) *DiagnosisHandler {
	return &DiagnosisHandler{
		service: service,
		metrics: metrics,
	}
}

type diagnoseRequest struct {
	Symptoms string `json:"symptoms"`
}

// Diagnose handles POST /api/diagnose. The result is recorded in the
// caller's history when a user identity is present on the context.
func (h *DiagnosisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var payload diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.Diagnose(r.Context(), userID, payload.Symptoms)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	observability.RecordDiagnosisMetric(r.Context(), h.metrics, diagnosisBranch(result))

	respondWithJSON(w, http.StatusOK, result)
}

// diagnosisBranch classifies a result for metrics by its outcome shape
func diagnosisBranch(result *entities.DiagnosisResult) string {
	switch {
	case result.Disease == "No symptoms provided":
		return "no_input"
	case result.Disease == "No matching conditions found":
		return "no_match"
	case strings.HasPrefix(result.Disease, "Found "):
		return "multiple_candidates"
	default:
		return "single_match"
	}
}

// GetHistory handles GET /api/diagnose/history
func (h *DiagnosisHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	records, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"history": records,
		"count":   len(records),
	})
}

type diagnosisFeedbackRequest struct {
	Feedback   string `json:"feedback"`
	IsAccurate *bool  `json:"is_accurate"`
}

// SubmitFeedback handles POST /api/diagnose/{id}/feedback
func (h *DiagnosisHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	recordID := r.PathValue("id")
	if recordID == "" {
		respondWithError(w, http.StatusBadRequest, "record ID is required")
		return
	}

	var payload diagnosisFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.SubmitFeedback(r.Context(), recordID, userID, payload.Feedback, payload.IsAccurate); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "feedback recorded",
	})
}
