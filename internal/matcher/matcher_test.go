package matcher_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/matcher"
)

func condition(name, symptoms, severity string) *entities.Condition {
	return &entities.Condition{
		Name:            name,
		Symptoms:        symptoms,
		SeverityLevel:   severity,
		AyurvedicRemedy: "remedy for " + name,
		ModernTreatment: "treatment for " + name,
		Description:     "description of " + name,
		Precautions:     "precautions for " + name,
	}
}

func TestDiagnose_NoSymptomsProvided(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Common Cold", "runny nose, sore throat, cough", "mild"),
	}

	for _, input := range []string{"", "   ", ",,,", " , , "} {
		result := matcher.Diagnose(input, conditions)
		assert.Equal(t, "No symptoms provided", result.Disease, "input %q", input)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Equal(t, "unknown", result.Severity)
	}
}

func TestDiagnose_EmptyConditionSnapshot(t *testing.T) {
	result := matcher.Diagnose("fever, cough", nil)

	assert.Equal(t, "No matching conditions found", result.Disease)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "unknown", result.Severity)
}

func TestDiagnose_NoOverlap(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Common Cold", "runny nose, sore throat, cough", "mild"),
		condition("Migraine", "headache, nausea", "moderate"),
	}

	result := matcher.Diagnose("xyzabc nonsense", conditions)

	assert.Equal(t, "No matching conditions found", result.Disease)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestDiagnose_ExactFullMatch(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Common Cold", "runny nose, sore throat, cough", "mild"),
	}

	result := matcher.Diagnose("runny nose, sore throat, cough", conditions)

	assert.Equal(t, "Common Cold", result.Disease)
	assert.Equal(t, 100.0, result.Confidence)
	assert.Equal(t, "mild", result.Severity)
	assert.Equal(t, "remedy for Common Cold", result.Ayurvedic)
	assert.Equal(t, "treatment for Common Cold", result.Medicine)
	assert.Equal(t, "precautions for Common Cold", result.Precautions)
}

// A single matched token out of a single input token scores 1.0: the score
// is never diluted by condition tokens the input did not mention.
func TestDiagnose_ScoreNotDilutedByConditionTokens(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Common Cold", "runny nose, sore throat, cough", "mild"),
	}

	result := matcher.Diagnose("cough", conditions)

	assert.Equal(t, "Common Cold", result.Disease)
	assert.Equal(t, 100.0, result.Confidence)
}

func TestDiagnose_TieKeepsFirstCondition(t *testing.T) {
	conditions := []*entities.Condition{
		condition("A", "fever, cough", "mild"),
		condition("B", "cough, fatigue", "severe"),
	}

	result := matcher.Diagnose("cough", conditions)

	assert.Equal(t, "A", result.Disease)
	assert.Equal(t, 100.0, result.Confidence)
}

func TestDiagnose_ThresholdBoundary(t *testing.T) {
	// 4 of 5 input tokens match: score 0.8 exactly.
	strong := condition("Strong", "fever, cough, headache, nausea", "moderate")
	result := matcher.Diagnose("fever, cough, headache, nausea, zzz", []*entities.Condition{strong})
	assert.Equal(t, "Strong", result.Disease)
	assert.Equal(t, 80.0, result.Confidence)
	assert.Equal(t, "moderate", result.Severity)

	// Best score below the threshold falls into the candidate list branch.
	weak := condition("Weak", "fever, cough, headache", "moderate")
	result = matcher.Diagnose("fever, cough, headache, aaa, bbb", []*entities.Condition{weak})
	assert.Contains(t, result.Disease, "possible conditions")
	assert.Equal(t, 60.0, result.Confidence)
	assert.Equal(t, "unknown", result.Severity)
}

func TestDiagnose_AggregateListsCandidatesByScore(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Low", "fever", "mild"),
		condition("High", "fever, fatigue", "severe"),
	}

	result := matcher.Diagnose("fever, fatigue, zzz", conditions)

	require.Contains(t, result.Disease, "Found 2 possible conditions")
	// High scored 2/3, Low scored 1/3; High must be listed first.
	highIdx := strings.Index(result.Description, "High")
	lowIdx := strings.Index(result.Description, "Low")
	require.NotEqual(t, -1, highIdx)
	require.NotEqual(t, -1, lowIdx)
	assert.Less(t, highIdx, lowIdx)
	assert.Contains(t, result.Description, "🔴 High (67% match)")
	assert.Contains(t, result.Description, "🟢 Low (33% match)")
	assert.Equal(t, 67.0, result.Confidence)
	assert.Equal(t, "unknown", result.Severity)
	assert.Contains(t, result.Ayurvedic, "Ayurvedic practitioner")
	assert.Contains(t, result.Medicine, "healthcare professional")
}

func TestDiagnose_AggregateCapsAtTenWithOverflowNote(t *testing.T) {
	var conditions []*entities.Condition
	for i := 0; i < 14; i++ {
		conditions = append(conditions, condition(fmt.Sprintf("Cond%02d", i), "fever, other", "mild"))
	}

	result := matcher.Diagnose("fever, unmatched", conditions)

	require.Contains(t, result.Disease, "Found 14 possible conditions")
	assert.Equal(t, 10, strings.Count(result.Description, "• "))
	assert.Contains(t, result.Description, "... and 4 more possible conditions")
}

func TestDiagnose_UnknownSeverityMarker(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Mystery", "fever", "catastrophic"),
	}

	result := matcher.Diagnose("fever, zzz", conditions)

	assert.Contains(t, result.Description, "❓ Mystery")
}

func TestDiagnose_BidirectionalContainment(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Allergy", "hay fever, sneezing", "mild"),
	}

	// Input token contained in the condition token.
	result := matcher.Diagnose("fever", conditions)
	assert.Equal(t, "Allergy", result.Disease)

	// Condition token contained in the input token.
	result = matcher.Diagnose("constant sneezing fits", conditions)
	assert.Equal(t, "Allergy", result.Disease)
}

func TestDiagnose_EmptyConditionSymptomList(t *testing.T) {
	conditions := []*entities.Condition{
		condition("Blank", "", "mild"),
		condition("Trailing", " , ,", "mild"),
	}

	result := matcher.Diagnose("fever", conditions)

	assert.Equal(t, "No matching conditions found", result.Disease)
}

func TestDiagnose_Idempotent(t *testing.T) {
	conditions := []*entities.Condition{
		condition("A", "fever, cough", "mild"),
		condition("B", "cough, fatigue", "severe"),
	}

	first := matcher.Diagnose("cough, fatigue, zzz", conditions)
	second := matcher.Diagnose("cough, fatigue, zzz", conditions)

	assert.Equal(t, first, second)
}

// Adding an input token that matches can only raise a condition's match
// count; the other counts are untouched.
func TestDiagnose_MatchCountMonotonicity(t *testing.T) {
	c := condition("A", "fever, cough, fatigue", "mild")

	base := matcher.Diagnose("fever, cough", []*entities.Condition{c})
	widened := matcher.Diagnose("fever, cough, fatigue", []*entities.Condition{c})

	assert.Equal(t, 100.0, base.Confidence)
	assert.Equal(t, 100.0, widened.Confidence)
	assert.Equal(t, "A", widened.Disease)
}

func TestDiagnose_InputTokenMatchesAtMostOncePerCondition(t *testing.T) {
	// "cough" overlaps both condition tokens but may only count once,
	// so the score is 1/2, not 2/2.
	c := condition("A", "dry cough, wet cough", "mild")

	result := matcher.Diagnose("cough, zzz", []*entities.Condition{c})

	assert.Contains(t, result.Disease, "Found 1 possible conditions")
	assert.Equal(t, 50.0, result.Confidence)
}

func TestDiagnoseWithOptions_CustomThreshold(t *testing.T) {
	c := condition("A", "fever", "mild")

	result := matcher.DiagnoseWithOptions("fever, zzz", []*entities.Condition{c}, matcher.Options{Threshold: 0.5})

	assert.Equal(t, "A", result.Disease)
	assert.Equal(t, 50.0, result.Confidence)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"fever", "sore throat"}, matcher.Tokenize(" Fever ,  SORE Throat , "))
	assert.Empty(t, matcher.Tokenize("  ,, "))
}
