package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicino/medicino/internal/api/handlers"
	"github.com/medicino/medicino/internal/api/middleware"
	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/infrastructure/observability"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

type stubDiagnosisService struct {
	result      *entities.DiagnosisResult
	records     []*entities.DiagnosisRecord
	err         error
	gotUserID   string
	gotSymptoms string
	gotFeedback string
}

func (s *stubDiagnosisService) Diagnose(ctx context.Context, userID, symptoms string) (*entities.DiagnosisResult, error) {
	s.gotUserID = userID
	s.gotSymptoms = symptoms
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubDiagnosisService) History(ctx context.Context, userID string, limit int) ([]*entities.DiagnosisRecord, error) {
	s.gotUserID = userID
	return s.records, s.err
}

func (s *stubDiagnosisService) SubmitFeedback(ctx context.Context, recordID, userID, feedback string, isAccurate *bool) error {
	s.gotUserID = userID
	s.gotFeedback = feedback
	return s.err
}

func testMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	metrics, err := observability.InitMetrics()
	require.NoError(t, err)
	return metrics
}

func TestDiagnosisHandler_Diagnose(t *testing.T) {
	service := &stubDiagnosisService{
		result: &entities.DiagnosisResult{
			Disease:    "Common Cold",
			Confidence: 100,
			Severity:   entities.SeverityMild,
		},
	}
	handler := handlers.NewDiagnosisHandler(service, testMetrics(t))

	body := `{"symptoms":"runny nose, sneezing"}`
	req := httptest.NewRequest("POST", "/api/diagnose", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Diagnose(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "runny nose, sneezing", service.gotSymptoms)
	assert.Empty(t, service.gotUserID, "anonymous request carries no user")

	var response entities.DiagnosisResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Common Cold", response.Disease)
	assert.Equal(t, float64(100), response.Confidence)
}

func TestDiagnosisHandler_Diagnose_Authenticated(t *testing.T) {
	service := &stubDiagnosisService{
		result: &entities.DiagnosisResult{Disease: "Influenza"},
	}
	handler := handlers.NewDiagnosisHandler(service, testMetrics(t))

	req := httptest.NewRequest("POST", "/api/diagnose", strings.NewReader(`{"symptoms":"fever"}`))
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.Diagnose(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", service.gotUserID)
}

func TestDiagnosisHandler_Diagnose_BadPayload(t *testing.T) {
	handler := handlers.NewDiagnosisHandler(&stubDiagnosisService{}, testMetrics(t))

	req := httptest.NewRequest("POST", "/api/diagnose", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler.Diagnose(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisHandler_Diagnose_EmptySymptoms(t *testing.T) {
	service := &stubDiagnosisService{err: apperrors.NewValidationError("symptoms are required")}
	handler := handlers.NewDiagnosisHandler(service, testMetrics(t))

	req := httptest.NewRequest("POST", "/api/diagnose", strings.NewReader(`{"symptoms":""}`))
	w := httptest.NewRecorder()

	handler.Diagnose(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisHandler_GetHistory(t *testing.T) {
	service := &stubDiagnosisService{
		records: []*entities.DiagnosisRecord{
			{ID: "rec-1", UserID: "user-1", DiagnosedCondition: "Common Cold"},
			{ID: "rec-2", UserID: "user-1", DiagnosedCondition: "Influenza"},
		},
	}
	handler := handlers.NewDiagnosisHandler(service, testMetrics(t))

	req := httptest.NewRequest("GET", "/api/diagnose/history", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		History []*entities.DiagnosisRecord `json:"history"`
		Count   int                         `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "rec-1", response.History[0].ID)
}

func TestDiagnosisHandler_GetHistory_Unauthenticated(t *testing.T) {
	handler := handlers.NewDiagnosisHandler(&stubDiagnosisService{}, testMetrics(t))

	req := httptest.NewRequest("GET", "/api/diagnose/history", nil)
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDiagnosisHandler_GetHistory_BadLimit(t *testing.T) {
	handler := handlers.NewDiagnosisHandler(&stubDiagnosisService{}, testMetrics(t))

	req := httptest.NewRequest("GET", "/api/diagnose/history?limit=abc", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisHandler_SubmitFeedback(t *testing.T) {
	service := &stubDiagnosisService{}
	handler := handlers.NewDiagnosisHandler(service, testMetrics(t))

	body := `{"feedback":"spot on","is_accurate":true}`
	req := httptest.NewRequest("POST", "/api/diagnose/rec-1/feedback", strings.NewReader(body))
	req.SetPathValue("id", "rec-1")
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.SubmitFeedback(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "spot on", service.gotFeedback)
}

func TestDiagnosisHandler_SubmitFeedback_NotFound(t *testing.T) {
	service := &stubDiagnosisService{err: apperrors.NewNotFoundError("record not found")}
	handler := handlers.NewDiagnosisHandler(service, testMetrics(t))

	req := httptest.NewRequest("POST", "/api/diagnose/missing/feedback", strings.NewReader(`{"feedback":"x"}`))
	req.SetPathValue("id", "missing")
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.SubmitFeedback(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
