// Package matcher implements the symptom-to-condition matching core. It is
// a pure function of the submitted symptom text and a snapshot of the
// condition catalog: no I/O, no shared state, safe for concurrent use.
package matcher

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/medicino/medicino/internal/domain/entities"
)

// StrongMatchThreshold is the score at or above which a single condition is
// presented as the primary result instead of a candidate list.
const StrongMatchThreshold = 0.8

// MaxListedCandidates caps how many candidates the aggregate description
// enumerates before collapsing the rest into an overflow note.
const MaxListedCandidates = 10

// Candidate is one condition that matched at least one input symptom.
type Candidate struct {
	Condition       *entities.Condition
	Score           float64
	Matches         int
	MatchedSymptoms []string
}

// Options tune the decision procedure. Zero values fall back to the
// contract defaults.
type Options struct {
	Threshold     float64
	MaxCandidates int
}

func (o Options) threshold() float64 {
	if o.Threshold > 0 {
		return o.Threshold
	}
	return StrongMatchThreshold
}

func (o Options) maxCandidates() int {
	if o.MaxCandidates > 0 {
		return o.MaxCandidates
	}
	return MaxListedCandidates
}

// Diagnose matches free-text symptoms against the condition snapshot and
// returns a structured result. Conditions are scanned in slice order; ties
// on the best score keep the first condition seen.
func Diagnose(symptomText string, conditions []*entities.Condition) *entities.DiagnosisResult {
	return DiagnoseWithOptions(symptomText, conditions, Options{})
}

// DiagnoseWithOptions is Diagnose with explicit tuning knobs.
func DiagnoseWithOptions(symptomText string, conditions []*entities.Condition, opts Options) *entities.DiagnosisResult {
	inputSymptoms := Tokenize(symptomText)

	// Mandatory short-circuit: no tokens means no scan and no division.
	if len(inputSymptoms) == 0 {
		return noSymptomsResult()
	}

	candidates, best, bestScore := score(inputSymptoms, conditions)

	if best != nil && bestScore >= opts.threshold() {
		return &entities.DiagnosisResult{
			Disease:     best.Name,
			Ayurvedic:   best.AyurvedicRemedy,
			Medicine:    best.ModernTreatment,
			Description: best.Description,
			Precautions: precautionsFor(best),
			Confidence:  roundPercent(bestScore),
			Severity:    best.SeverityLevel,
		}
	}

	if len(candidates) > 0 {
		return aggregateResult(candidates, bestScore, opts.maxCandidates())
	}

	return noMatchResult()
}

// Tokenize splits comma-separated symptom text into trimmed lowercase
// tokens, discarding empty pieces.
func Tokenize(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// score runs the per-condition containment scan. The returned candidates
// are sorted by score descending; equal scores keep snapshot order.
func score(inputSymptoms []string, conditions []*entities.Condition) ([]Candidate, *entities.Condition, float64) {
	var candidates []Candidate
	var best *entities.Condition
	bestScore := 0.0

	for _, condition := range conditions {
		conditionSymptoms := Tokenize(condition.Symptoms)

		matches := 0
		var matchedSymptoms []string
		for _, input := range inputSymptoms {
			for _, cs := range conditionSymptoms {
				// Bidirectional containment; first hit wins for this token.
				if strings.Contains(cs, input) || strings.Contains(input, cs) {
					matches++
					matchedSymptoms = append(matchedSymptoms, cs)
					break
				}
			}
		}

		if matches == 0 {
			continue
		}

		s := float64(matches) / float64(len(inputSymptoms))
		candidates = append(candidates, Candidate{
			Condition:       condition,
			Score:           s,
			Matches:         matches,
			MatchedSymptoms: matchedSymptoms,
		})

		// Strict greater-than: the first condition with the top score wins.
		if s > bestScore {
			bestScore = s
			best = condition
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates, best, bestScore
}

func aggregateResult(candidates []Candidate, bestScore float64, maxListed int) *entities.DiagnosisResult {
	listed := candidates
	if len(listed) > maxListed {
		listed = listed[:maxListed]
	}

	var b strings.Builder
	b.WriteString("Your symptoms could indicate these conditions:\n")
	for _, c := range listed {
		fmt.Fprintf(&b, "\n• %s %s (%.0f%% match)", severityMarker(c.Condition.SeverityLevel), c.Condition.Name, roundPercent(c.Score))
	}
	if len(candidates) > maxListed {
		fmt.Fprintf(&b, "\n\n... and %d more possible conditions", len(candidates)-maxListed)
	}
	b.WriteString("\n\nAdd more symptoms for more accurate results.")

	confidence := 0.0
	if bestScore > 0 {
		confidence = roundPercent(bestScore)
	}

	return &entities.DiagnosisResult{
		Disease:     fmt.Sprintf("Found %d possible conditions", len(candidates)),
		Ayurvedic:   "Please consult an Ayurvedic practitioner for personalized treatment.",
		Medicine:    "Please consult a healthcare professional for proper diagnosis.",
		Description: b.String(),
		Precautions: "Always seek professional medical advice for an accurate diagnosis. This is not a substitute for medical consultation.",
		Confidence:  confidence,
		Severity:    entities.SeverityUnknown,
	}
}

func noSymptomsResult() *entities.DiagnosisResult {
	return &entities.DiagnosisResult{
		Disease:     "No symptoms provided",
		Ayurvedic:   "Please enter your symptoms to get a diagnosis.",
		Medicine:    "Please enter your symptoms to get medicine suggestions.",
		Description: "Please describe your symptoms in simple terms like: fever, headache, cough, stomach pain, etc.",
		Precautions: "Always seek professional medical advice for an accurate diagnosis.",
		Confidence:  0,
		Severity:    entities.SeverityUnknown,
	}
}

func noMatchResult() *entities.DiagnosisResult {
	return &entities.DiagnosisResult{
		Disease:     "No matching conditions found",
		Ayurvedic:   "Please consult an Ayurvedic practitioner for personalized treatment.",
		Medicine:    "Please consult a healthcare professional for proper diagnosis.",
		Description: "Try describing your symptoms in simple terms like: fever, headache, cough, stomach pain, etc.",
		Precautions: "Always seek professional medical advice for an accurate diagnosis.",
		Confidence:  0,
		Severity:    entities.SeverityUnknown,
	}
}

func precautionsFor(c *entities.Condition) string {
	if c.Precautions != "" {
		return c.Precautions
	}
	return "Always seek professional medical advice for an accurate diagnosis."
}

// severityMarker maps a severity label to its presentation marker. The
// mapping is purely visual and never influences scoring or ordering.
func severityMarker(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case entities.SeverityMild:
		return "🟢"
	case entities.SeverityModerate:
		return "🟡"
	case entities.SeveritySevere:
		return "🔴"
	default:
		return "❓"
	}
}

func roundPercent(score float64) float64 {
	return math.Round(score * 100)
}
