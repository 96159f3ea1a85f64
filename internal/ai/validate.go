package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// rawAnalysis mirrors the response schema with pointer fields so missing
// top-level keys are distinguishable from empty values after decode.
type rawAnalysis struct {
	PossibleConditions *[]models.ConditionAssessment `json:"possible_conditions"`
	RecommendedDoctors *[]models.RecommendedDoctor   `json:"recommended_doctors"`
	GeneralAdvice      *string                       `json:"general_advice"`
	Disclaimer         *string                       `json:"disclaimer"`
}

// ParseAnalysis decodes the completion text against the analysis schema and
// validates field presence. Any deviation (non-JSON text, a missing field,
// a wrong type) is an ErrSchemaViolation; the payload is never trusted
// structurally at point of use.
func ParseAnalysis(payload string) (*models.AnalysisResult, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrSchemaViolation)
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if raw.PossibleConditions == nil {
		return nil, fmt.Errorf("%w: missing possible_conditions", ErrSchemaViolation)
	}
	if raw.RecommendedDoctors == nil {
		return nil, fmt.Errorf("%w: missing recommended_doctors", ErrSchemaViolation)
	}
	if raw.GeneralAdvice == nil {
		return nil, fmt.Errorf("%w: missing general_advice", ErrSchemaViolation)
	}
	if raw.Disclaimer == nil || strings.TrimSpace(*raw.Disclaimer) == "" {
		return nil, fmt.Errorf("%w: missing disclaimer", ErrSchemaViolation)
	}

	result := &models.AnalysisResult{
		PossibleConditions: *raw.PossibleConditions,
		RecommendedDoctors: *raw.RecommendedDoctors,
		GeneralAdvice:      *raw.GeneralAdvice,
		Disclaimer:         *raw.Disclaimer,
	}

	for i, c := range result.PossibleConditions {
		if strings.TrimSpace(c.Condition) == "" {
			return nil, fmt.Errorf("%w: condition %d has no name", ErrSchemaViolation, i)
		}
		// Known likelihood literals are case-normalized; anything the model
		// invents beyond low/medium/high passes through unchanged.
		result.PossibleConditions[i].Likelihood = models.NormalizeLikelihood(c.Likelihood)
	}

	return result, nil
}
