package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
)

// MedicineService defines the medicine catalog operations used by the handler.
type MedicineService interface {
	GetByID(ctx context.Context, id int64) (*entities.Medicine, error)
	GetByName(ctx context.Context, name string) (*entities.Medicine, error)
	List(ctx context.Context, filter repositories.MedicineFilter) ([]*entities.Medicine, error)
	Search(ctx context.Context, query string, limit int) ([]*entities.Medicine, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, medicine *entities.Medicine) error
}

// MedicineHandler handles medicine catalog requests.
type MedicineHandler struct {
	service MedicineService
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(service MedicineService) *MedicineHandler {
	return &MedicineHandler{service: service}
}

// ListMedicines handles GET /api/medicines
func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	filter := repositories.MedicineFilter{
		Category: r.URL.Query().Get("category"),
		Limit:    parseLimit(r, defaultCatalogLimit),
		Offset:   parseOffset(r),
	}

	medicines, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"medicines": medicines,
		"count":     len(medicines),
	})
}

// SearchMedicines handles GET /api/medicines/search. Accepts either a free
// text query or an exact name lookup.
func (h *MedicineHandler) SearchMedicines(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		medicine, err := h.service.GetByName(r.Context(), name)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, medicine)
		return
	}

	query := r.URL.Query().Get("q")
	medicines, err := h.service.Search(r.Context(), query, parseLimit(r, defaultCatalogLimit))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"medicines": medicines,
		"count":     len(medicines),
	})
}

// GetMedicine handles GET /api/medicines/{id}
func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "medicine ID must be a number")
		return
	}

	medicine, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, medicine)
}

// GetCategories handles GET /api/medicines/categories
func (h *MedicineHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// CreateMedicine handles POST /api/medicines
func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var medicine entities.Medicine
	if err := json.NewDecoder(r.Body).Decode(&medicine); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &medicine); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, medicine)
}
