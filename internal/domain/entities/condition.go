package entities

import (
	"time"
)

// Condition represents a medical condition in the reference catalog.
// Symptoms holds the comma-separated symptom phrases the matcher
// tokenizes on every diagnosis request.
type Condition struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Symptoms        string    `json:"symptoms" db:"symptoms"`
	AyurvedicRemedy string    `json:"ayurvedic_remedy" db:"ayurvedic_remedy"`
	ModernTreatment string    `json:"modern_treatment" db:"modern_treatment"`
	Precautions     string    `json:"precautions" db:"precautions"`
	SeverityLevel   string    `json:"severity_level" db:"severity_level"`
	Category        string    `json:"category" db:"category"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Severity labels with a known presentation marker. The set is open:
// unrecognized labels render with the fallback marker but are stored as-is.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
	SeverityUnknown  = "unknown"
)
