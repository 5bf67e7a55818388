package repositories

import (
	"context"

	"github.com/medicino/medicino/internal/domain/entities"
)

// HistoryRepository defines the interface for diagnosis history persistence.
// The history is append-mostly: records are written once per diagnosis and
// only the feedback fields are ever updated.
type HistoryRepository interface {
	// Append stores a new diagnosis record
	Append(ctx context.Context, record *entities.DiagnosisRecord) error

	// ListByUser retrieves the newest records for a user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.DiagnosisRecord, error)

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id string) (*entities.DiagnosisRecord, error)

	// UpdateFeedback sets the feedback fields on a record owned by userID
	UpdateFeedback(ctx context.Context, id, userID, feedback string, isAccurate *bool) error
}
