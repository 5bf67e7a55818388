package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/repositories"
	"github.com/medicino/medicino/internal/infrastructure/clients/postgres"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

// MedicineAdapter implements medicine catalog persistence in Postgres.
type MedicineAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewMedicineAdapter creates a new medicine adapter.
func NewMedicineAdapter(client *postgres.Client) repositories.MedicineRepository {
	return &MedicineAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var medicineColumns = []interface{}{
	"id", "name", "description", "dosage", "side_effects",
	"contraindications", "price", "category", "is_active", "created_at",
}

// GetByID retrieves a medicine by ID.
func (a *MedicineAdapter) GetByID(ctx context.Context, id int64) (*entities.Medicine, error) {
	query, args, err := a.db.From("medicines").
		Select(medicineColumns...).
		Where(goqu.Ex{"id": id, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medicine query", err)
	}

	m, err := scanMedicine(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("medicine with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medicine", err)
	}
	return m, nil
}

// GetByName retrieves the first medicine whose name contains name.
func (a *MedicineAdapter) GetByName(ctx context.Context, name string) (*entities.Medicine, error) {
	query, args, err := a.db.From("medicines").
		Select(medicineColumns...).
		Where(goqu.Ex{"is_active": true}, goqu.I("name").ILike("%"+name+"%")).
		Order(goqu.I("name").Asc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medicine query", err)
	}

	m, err := scanMedicine(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("medicine %q not found", name))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medicine by name", err)
	}
	return m, nil
}

// List retrieves medicines matching the filter, ordered by name.
func (a *MedicineAdapter) List(ctx context.Context, filter repositories.MedicineFilter) ([]*entities.Medicine, error) {
	ds := a.db.From("medicines").
		Select(medicineColumns...).
		Where(goqu.Ex{"is_active": true})

	if filter.Query != "" {
		ds = ds.Where(goqu.I("name").ILike("%" + filter.Query + "%"))
	}
	if filter.Category != "" {
		ds = ds.Where(goqu.I("category").ILike("%" + filter.Category + "%"))
	}

	ds = ds.Order(goqu.I("name").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medicine list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query medicines", err)
	}
	defer rows.Close()

	var medicines []*entities.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan medicine", err)
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

// Categories returns the distinct non-empty categories.
func (a *MedicineAdapter) Categories(ctx context.Context) ([]string, error) {
	query, args, err := a.db.From("medicines").
		Select(goqu.DISTINCT("category")).
		Where(goqu.Ex{"is_active": true}, goqu.I("category").Neq("")).
		Order(goqu.I("category").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medicine categories query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list medicine categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, apperrors.NewInternalError("failed to scan medicine category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Create inserts a medicine.
func (a *MedicineAdapter) Create(ctx context.Context, medicine *entities.Medicine) error {
	record := goqu.Record{
		"name":              medicine.Name,
		"description":       medicine.Description,
		"dosage":            medicine.Dosage,
		"side_effects":      medicine.SideEffects,
		"contraindications": medicine.Contraindications,
		"price":             medicine.Price,
		"category":          medicine.Category,
		"is_active":         medicine.IsActive,
		"created_at":        medicine.CreatedAt,
	}

	query, args, err := a.db.Insert("medicines").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build medicine insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&medicine.ID); err != nil {
		return apperrors.NewInternalError("failed to create medicine", err)
	}
	return nil
}

func scanMedicine(row rowScanner) (*entities.Medicine, error) {
	m := &entities.Medicine{}
	var price sql.NullFloat64
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Dosage,
		&m.SideEffects,
		&m.Contraindications,
		&price,
		&m.Category,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if price.Valid {
		m.Price = &price.Float64
	}
	return m, nil
}
