package repositories

import (
	"context"

	"github.com/medicino/medicino/internal/domain/entities"
)

// MedicineRepository defines the interface for medicine catalog access.
type MedicineRepository interface {
	// GetByID retrieves a medicine by ID
	GetByID(ctx context.Context, id int64) (*entities.Medicine, error)

	// GetByName retrieves the first medicine whose name contains the given
	// text, case-insensitive
	GetByName(ctx context.Context, name string) (*entities.Medicine, error)

	// List retrieves medicines matching the filter, ordered by name
	List(ctx context.Context, filter MedicineFilter) ([]*entities.Medicine, error)

	// Categories returns the distinct non-empty categories
	Categories(ctx context.Context) ([]string, error)

	// Create inserts a medicine (seeding and admin use)
	Create(ctx context.Context, medicine *entities.Medicine) error
}

// MedicineFilter defines filters for listing medicines.
type MedicineFilter struct {
	Query    string
	Category string
	Limit    int
	Offset   int
}
