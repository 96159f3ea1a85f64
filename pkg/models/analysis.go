package models

import "strings"

// Likelihood is the expected vocabulary for condition likelihoods. The
// backend is asked for low/medium/high but is free-form text underneath, so
// unknown literals are passed through rather than rejected.
type Likelihood = string

const (
	LikelihoodLow    Likelihood = "low"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodHigh   Likelihood = "high"
)

// NormalizeLikelihood lowercases known likelihood literals and leaves
// anything else untouched.
func NormalizeLikelihood(v string) string {
	switch strings.ToLower(v) {
	case LikelihoodLow:
		return LikelihoodLow
	case LikelihoodMedium:
		return LikelihoodMedium
	case LikelihoodHigh:
		return LikelihoodHigh
	}
	return v
}

// ConditionAssessment is one candidate condition returned by the backend.
type ConditionAssessment struct {
	Condition             string `json:"condition"`
	Likelihood            string `json:"likelihood"`
	Description           string `json:"description"`
	GeneralTreatment      string `json:"general_treatment"`
	RecommendedSpecialist string `json:"recommended_specialist"`
}

// RecommendedDoctor is a projection of a PhysicianRecord selected by the
// backend as relevant to the assessed conditions.
type RecommendedDoctor struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Contact        string `json:"contact"`
}

// AnalysisResult is the top-level response of a symptom analysis. When Error
// is set, both sequences are empty and GeneralAdvice/Disclaimer carry fixed
// fallback text.
type AnalysisResult struct {
	PossibleConditions []ConditionAssessment `json:"possible_conditions"`
	RecommendedDoctors []RecommendedDoctor   `json:"recommended_doctors"`
	GeneralAdvice      string                `json:"general_advice"`
	Disclaimer         string                `json:"disclaimer"`
	Error              string                `json:"error,omitempty"`
}

// Failed reports whether the result carries the error marker.
func (r *AnalysisResult) Failed() bool {
	return r.Error != ""
}
