package entities

import (
	"time"
)

// DiagnosisResult is the outcome of a single matcher invocation. It is
// created fresh per request and has no identity of its own; persisting it
// is the history repository's job.
type DiagnosisResult struct {
	Disease     string  `json:"disease"`
	Ayurvedic   string  `json:"ayurvedic"`
	Medicine    string  `json:"medicine"`
	Description string  `json:"description"`
	Precautions string  `json:"precautions"`
	Confidence  float64 `json:"confidence"`
	Severity    string  `json:"severity"`
}

// DiagnosisRecord is one stored history entry for a user.
type DiagnosisRecord struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	Symptoms           string    `json:"symptoms" db:"symptoms"`
	DiagnosedCondition string    `json:"diagnosed_condition" db:"diagnosed_condition"`
	AyurvedicRemedy    string    `json:"ayurvedic_remedy" db:"ayurvedic_remedy"`
	MedicineSuggestion string    `json:"medicine_suggestion" db:"medicine_suggestion"`
	Confidence         float64   `json:"confidence" db:"confidence"`
	SeverityLevel      string    `json:"severity_level" db:"severity_level"`
	UserFeedback       string    `json:"user_feedback,omitempty" db:"user_feedback"`
	IsAccurate         *bool     `json:"is_accurate,omitempty" db:"is_accurate"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
