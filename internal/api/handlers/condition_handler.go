package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
)

const defaultCatalogLimit = 50

// ConditionService defines the condition catalog operations used by the handler.
type ConditionService interface {
	GetByID(ctx context.Context, id int64) (*entities.Condition, error)
	List(ctx context.Context, filter repositories.ConditionFilter) ([]*entities.Condition, error)
	Search(ctx context.Context, query string, limit int) ([]*entities.Condition, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, condition *entities.Condition) error
}

// ConditionHandler handles condition catalog requests.
type ConditionHandler struct {
	service ConditionService
}

// NewConditionHandler creates a new condition handler
func NewConditionHandler(service ConditionService) *ConditionHandler {
	return &ConditionHandler{service: service}
}

// ListConditions handles GET /api/conditions
func (h *ConditionHandler) ListConditions(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ConditionFilter{
		Category: r.URL.Query().Get("category"),
		Limit:    parseLimit(r, defaultCatalogLimit),
		Offset:   parseOffset(r),
	}

	conditions, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conditions": conditions,
		"count":      len(conditions),
	})
}

// SearchConditions handles GET /api/conditions/search
func (h *ConditionHandler) SearchConditions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	conditions, err := h.service.Search(r.Context(), query, parseLimit(r, defaultCatalogLimit))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conditions": conditions,
		"count":      len(conditions),
	})
}

// GetCondition handles GET /api/conditions/{id}
func (h *ConditionHandler) GetCondition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "condition ID must be a number")
		return
	}

	condition, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, condition)
}

// GetCategories handles GET /api/conditions/categories
func (h *ConditionHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// CreateCondition handles POST /api/conditions
func (h *ConditionHandler) CreateCondition(w http.ResponseWriter, r *http.Request) {
	var condition entities.Condition
	if err := json.NewDecoder(r.Body).Decode(&condition); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &condition); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, condition)
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 200 {
		return fallback
	}
	return limit
}

func parseOffset(r *http.Request) int {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
