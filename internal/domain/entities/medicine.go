package entities

import (
	"time"
)

// Medicine represents an entry in the medicine catalog.
type Medicine struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Description       string    `json:"description" db:"description"`
	Dosage            string    `json:"dosage" db:"dosage"`
	SideEffects       string    `json:"side_effects" db:"side_effects"`
	Contraindications string    `json:"contraindications" db:"contraindications"`
	Price             *float64  `json:"price,omitempty" db:"price"`
	Category          string    `json:"category" db:"category"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
