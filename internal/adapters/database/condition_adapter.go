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

// ConditionAdapter implements condition catalog persistence in Postgres.
type ConditionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewConditionAdapter creates a new condition adapter.
func NewConditionAdapter(client *postgres.Client) repositories.ConditionRepository {
	return &ConditionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var conditionColumns = []interface{}{
	"id", "name", "description", "symptoms", "ayurvedic_remedy",
	"modern_treatment", "precautions", "severity_level", "category",
	"is_active", "created_at",
}

// GetByID retrieves a condition by ID.
func (a *ConditionAdapter) GetByID(ctx context.Context, id int64) (*entities.Condition, error) {
	query, args, err := a.db.From("conditions").
		Select(conditionColumns...).
		Where(goqu.Ex{"id": id, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build condition query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	condition, err := scanCondition(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("condition with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get condition", err)
	}

	return condition, nil
}

// List retrieves conditions matching the filter, ordered by name.
func (a *ConditionAdapter) List(ctx context.Context, filter repositories.ConditionFilter) ([]*entities.Condition, error) {
	ds := a.db.From("conditions").
		Select(conditionColumns...).
		Where(goqu.Ex{"is_active": true})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		ds = ds.Where(goqu.Or(
			goqu.I("name").ILike(pattern),
			goqu.I("symptoms").ILike(pattern),
			goqu.I("description").ILike(pattern),
		))
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
		return nil, apperrors.NewInternalError("failed to build condition list query", err)
	}

	return a.queryConditions(ctx, query, args...)
}

// Snapshot returns every active condition ordered by id. The explicit order
// keeps the matcher's tie-break deterministic across calls.
func (a *ConditionAdapter) Snapshot(ctx context.Context) ([]*entities.Condition, error) {
	query, args, err := a.db.From("conditions").
		Select(conditionColumns...).
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build condition snapshot query", err)
	}

	return a.queryConditions(ctx, query, args...)
}

// Categories returns the distinct non-empty categories.
func (a *ConditionAdapter) Categories(ctx context.Context) ([]string, error) {
	query, args, err := a.db.From("conditions").
		Select(goqu.DISTINCT("category")).
		Where(goqu.Ex{"is_active": true}, goqu.I("category").Neq("")).
		Order(goqu.I("category").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build condition categories query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list condition categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, apperrors.NewInternalError("failed to scan condition category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Create inserts a condition.
func (a *ConditionAdapter) Create(ctx context.Context, condition *entities.Condition) error {
	record := goqu.Record{
		"name":             condition.Name,
		"description":      condition.Description,
		"symptoms":         condition.Symptoms,
		"ayurvedic_remedy": condition.AyurvedicRemedy,
		"modern_treatment": condition.ModernTreatment,
		"precautions":      condition.Precautions,
		"severity_level":   condition.SeverityLevel,
		"category":         condition.Category,
		"is_active":        condition.IsActive,
		"created_at":       condition.CreatedAt,
	}

	query, args, err := a.db.Insert("conditions").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build condition insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&condition.ID); err != nil {
		return apperrors.NewInternalError("failed to create condition", err)
	}
	return nil
}

func (a *ConditionAdapter) queryConditions(ctx context.Context, query string, args ...interface{}) ([]*entities.Condition, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query conditions", err)
	}
	defer rows.Close()

	var conditions []*entities.Condition
	for rows.Next() {
		condition, err := scanCondition(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan condition", err)
		}
		conditions = append(conditions, condition)
	}
	return conditions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCondition(row rowScanner) (*entities.Condition, error) {
	c := &entities.Condition{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Symptoms,
		&c.AyurvedicRemedy,
		&c.ModernTreatment,
		&c.Precautions,
		&c.SeverityLevel,
		&c.Category,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
