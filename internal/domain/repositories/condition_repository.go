package repositories

import (
	"context"

	"github.com/medicino/medicino/internal/domain/entities"
)

// ConditionRepository defines the interface for condition catalog access.
type ConditionRepository interface {
	// GetByID retrieves a condition by ID
	GetByID(ctx context.Context, id int64) (*entities.Condition, error)

	// List retrieves conditions matching the filter, ordered by id so the
	// matcher sees a stable snapshot order
	List(ctx context.Context, filter ConditionFilter) ([]*entities.Condition, error)

	// Snapshot returns every active condition; this is the per-request
	// reference table handed to the matcher
	Snapshot(ctx context.Context) ([]*entities.Condition, error)

	// Categories returns the distinct non-empty categories
	Categories(ctx context.Context) ([]string, error)

	// Create inserts a condition (seeding and admin use)
	Create(ctx context.Context, condition *entities.Condition) error
}

// ConditionFilter defines filters for listing conditions.
type ConditionFilter struct {
	// Query matches name, symptoms or description, case-insensitive
	Query    string
	Category string
	Limit    int
	Offset   int
}
