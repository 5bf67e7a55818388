package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
	"github.com/medicino/medicino/internal/matcher"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

// DiagnosisService runs symptom analysis against the condition table and
// records the outcome in the user's history.
type DiagnosisService struct {
	conditions repositories.ConditionRepository
	history    repositories.HistoryRepository
	opts       matcher.Options
	historyCap int
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(
	conditions repositories.ConditionRepository,
	history repositories.HistoryRepository,
	opts matcher.Options,
	historyLimit int,
) *DiagnosisService {
	return &DiagnosisService{
		conditions: conditions,
		history:    history,
		opts:       opts,
		historyCap: historyLimit,
	}
}

// Diagnose analyzes free-text symptoms and returns a result. If userID is
// non-empty the result is recorded in the background so history writes never
// block or fail the request.
func (s *DiagnosisService) Diagnose(ctx context.Context, userID, symptoms string) (*entities.DiagnosisResult, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, apperrors.NewValidationError("symptoms are required")
	}

	snapshot, err := s.conditions.Snapshot(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load conditions", err)
	}

	result := matcher.DiagnoseWithOptions(symptoms, snapshot, s.opts)

	if userID != "" {
		s.recordHistory(userID, symptoms, result)
	}

	return result, nil
}

// recordHistory appends a history row in the background
func (s *DiagnosisService) recordHistory(userID, symptoms string, result *entities.DiagnosisResult) {
	record := &entities.DiagnosisRecord{
		UserID:             userID,
		Symptoms:           symptoms,
		DiagnosedCondition: result.Disease,
		AyurvedicRemedy:    result.Ayurvedic,
		MedicineSuggestion: result.Medicine,
		Confidence:         result.Confidence,
		SeverityLevel:      result.Severity,
	}

	go func() {
		// Fresh context since the request context may already be cancelled
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.history.Append(bgCtx, record); err != nil {
			log.Warn().Str("user_id", userID).Err(err).Msg("failed to record diagnosis history")
		}
	}()
}

// History returns the user's most recent diagnosis records, newest first.
func (s *DiagnosisService) History(ctx context.Context, userID string, limit int) ([]*entities.DiagnosisRecord, error) {
	if limit <= 0 || limit > s.historyCap {
		limit = s.historyCap
	}
	return s.history.ListByUser(ctx, userID, limit)
}

// SubmitFeedback records whether a stored diagnosis was helpful. Only the
// owning user may update a record.
func (s *DiagnosisService) SubmitFeedback(ctx context.Context, recordID, userID, feedback string, isAccurate *bool) error {
	if strings.TrimSpace(recordID) == "" {
		return apperrors.NewValidationError("record id is required")
	}
	if strings.TrimSpace(feedback) == "" && isAccurate == nil {
		return apperrors.NewValidationError("feedback or accuracy flag is required")
	}
	return s.history.UpdateFeedback(ctx, recordID, userID, feedback, isAccurate)
}
