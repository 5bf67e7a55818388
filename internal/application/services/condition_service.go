package services

import (
	"context"
	"strings"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

// ConditionService exposes the condition catalog.
type ConditionService struct {
	repo repositories.ConditionRepository
}

// NewConditionService creates a new condition service
func NewConditionService(repo repositories.ConditionRepository) *ConditionService {
	return &ConditionService{repo: repo}
}

// GetByID retrieves a condition by ID
func (s *ConditionService) GetByID(ctx context.Context, id int64) (*entities.Condition, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves conditions matching the filter
func (s *ConditionService) List(ctx context.Context, filter repositories.ConditionFilter) ([]*entities.Condition, error) {
	return s.repo.List(ctx, filter)
}

// Search looks up conditions by free text over name, symptoms and description.
func (s *ConditionService) Search(ctx context.Context, query string, limit int) ([]*entities.Condition, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("search query is required")
	}
	return s.repo.List(ctx, repositories.ConditionFilter{Query: query, Limit: limit})
}

// Categories returns the distinct condition categories
func (s *ConditionService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Create stores a new condition
func (s *ConditionService) Create(ctx context.Context, condition *entities.Condition) error {
	if strings.TrimSpace(condition.Name) == "" {
		return apperrors.NewValidationError("condition name is required")
	}
	if strings.TrimSpace(condition.Symptoms) == "" {
		return apperrors.NewValidationError("condition symptoms are required")
	}
	condition.IsActive = true
	return s.repo.Create(ctx, condition)
}
