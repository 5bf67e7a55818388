package services

import (
	"context"
	"strings"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

// MedicineService exposes the medicine catalog.
type MedicineService struct {
	repo repositories.MedicineRepository
}

// NewMedicineService creates a new medicine service
func NewMedicineService(repo repositories.MedicineRepository) *MedicineService {
	return &MedicineService{repo: repo}
}

// GetByID retrieves a medicine by ID
func (s *MedicineService) GetByID(ctx context.Context, id int64) (*entities.Medicine, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName retrieves a medicine by its name, case-insensitively.
func (s *MedicineService) GetByName(ctx context.Context, name string) (*entities.Medicine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("medicine name is required")
	}
	return s.repo.GetByName(ctx, name)
}

// List retrieves medicines matching the filter
func (s *MedicineService) List(ctx context.Context, filter repositories.MedicineFilter) ([]*entities.Medicine, error) {
	return s.repo.List(ctx, filter)
}

// Search looks up medicines by free text over name and description.
func (s *MedicineService) Search(ctx context.Context, query string, limit int) ([]*entities.Medicine, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("search query is required")
	}
	return s.repo.List(ctx, repositories.MedicineFilter{Query: query, Limit: limit})
}

// Categories returns the distinct medicine categories
func (s *MedicineService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Create stores a new medicine
func (s *MedicineService) Create(ctx context.Context, medicine *entities.Medicine) error {
	if strings.TrimSpace(medicine.Name) == "" {
		return apperrors.NewValidationError("medicine name is required")
	}
	medicine.IsActive = true
	return s.repo.Create(ctx, medicine)
}
