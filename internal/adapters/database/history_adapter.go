package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
	"github.com/medicino/medicino/internal/infrastructure/clients/postgres"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

// HistoryAdapter implements diagnosis history persistence in Postgres.
type HistoryAdapter struct {
	client *postgres.Client
}

// NewHistoryAdapter creates a new history adapter
func NewHistoryAdapter(client *postgres.Client) repositories.HistoryRepository {
	return &HistoryAdapter{client: client}
}

// Append stores a new diagnosis record
func (a *HistoryAdapter) Append(ctx context.Context, record *entities.DiagnosisRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO diagnosis_history
		(id, user_id, symptoms, diagnosed_condition, ayurvedic_remedy, medicine_suggestion, confidence, severity_level, user_feedback, is_accurate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := a.client.DB().ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Symptoms,
		record.DiagnosedCondition,
		record.AyurvedicRemedy,
		record.MedicineSuggestion,
		record.Confidence,
		record.SeverityLevel,
		record.UserFeedback,
		record.IsAccurate,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to append diagnosis record", err)
	}
	return nil
}

// ListByUser retrieves the newest records for a user, newest first
func (a *HistoryAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.DiagnosisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, symptoms, diagnosed_condition, ayurvedic_remedy, medicine_suggestion, confidence, severity_level, user_feedback, is_accurate, created_at
		FROM diagnosis_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := a.client.DB().QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list diagnosis history", err)
	}
	defer rows.Close()

	var records []*entities.DiagnosisRecord
	for rows.Next() {
		r, err := scanDiagnosisRecord(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan diagnosis record", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetByID retrieves a single record
func (a *HistoryAdapter) GetByID(ctx context.Context, id string) (*entities.DiagnosisRecord, error) {
	query := `
		SELECT id, user_id, symptoms, diagnosed_condition, ayurvedic_remedy, medicine_suggestion, confidence, severity_level, user_feedback, is_accurate, created_at
		FROM diagnosis_history
		WHERE id = $1
	`

	r, err := scanDiagnosisRecord(a.client.DB().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("diagnosis record not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get diagnosis record", err)
	}
	return r, nil
}

// UpdateFeedback sets the feedback fields on a record owned by userID
func (a *HistoryAdapter) UpdateFeedback(ctx context.Context, id, userID, feedback string, isAccurate *bool) error {
	query := `
		UPDATE diagnosis_history
		SET user_feedback = $3, is_accurate = COALESCE($4, is_accurate)
		WHERE id = $1 AND user_id = $2
	`

	result, err := a.client.DB().ExecContext(ctx, query, id, userID, feedback, isAccurate)
	if err != nil {
		return apperrors.NewInternalError("failed to update diagnosis feedback", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check feedback update result", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("diagnosis record not found")
	}
	return nil
}

func scanDiagnosisRecord(row rowScanner) (*entities.DiagnosisRecord, error) {
	r := &entities.DiagnosisRecord{}
	var feedback sql.NullString
	var isAccurate sql.NullBool
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Symptoms,
		&r.DiagnosedCondition,
		&r.AyurvedicRemedy,
		&r.MedicineSuggestion,
		&r.Confidence,
		&r.SeverityLevel,
		&feedback,
		&isAccurate,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if feedback.Valid {
		r.UserFeedback = feedback.String
	}
	if isAccurate.Valid {
		v := isAccurate.Bool
		r.IsAccurate = &v
	}
	return r, nil
}
