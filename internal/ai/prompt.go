package ai

import (
	"encoding/json"
	"fmt"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// systemPromptTemplate fixes the assistant's role, embeds the serialized
// physician directory so recommendations can only come from known entries,
// and spells out the output schema as a strict contract.
const systemPromptTemplate = `You are a medical assistant designed to provide preliminary analysis of symptoms. You do not diagnose.

Your responsibilities are:
1. Analyze the symptoms provided by the user
2. Identify possible conditions that match these symptoms (list 2-4 possibilities with varying levels of likelihood)
3. Suggest general treatment approaches for each condition
4. Recommend which type of specialist the user should consult
5. Recommend specific doctors from the directory below based on the appropriate specialization

Always include an appropriate medical disclaimer and encourage seeking professional medical advice.

Physician directory: %s

IMPORTANT: Your response must be a single valid JSON object with exactly this structure:
{
    "possible_conditions": [
        {
            "condition": "Name of condition",
            "likelihood": "low/medium/high",
            "description": "Brief description",
            "general_treatment": "General treatment approaches",
            "recommended_specialist": "Type of specialist"
        }
    ],
    "recommended_doctors": [
        {
            "name": "Doctor name",
            "specialization": "Doctor specialization",
            "experience": "Experience",
            "contact": "Contact info"
        }
    ],
    "general_advice": "General advice about the symptoms",
    "disclaimer": "Medical disclaimer"
}`

// BuildSystemPrompt serializes the directory and splices it into the system
// instruction. Serialization is kept as one explicit step so a size cap can
// be added here if directories ever grow large.
func BuildSystemPrompt(directory []models.PhysicianRecord) (string, error) {
	serialized, err := json.Marshal(directory)
	if err != nil {
		return "", fmt.Errorf("serializing directory: %w", err)
	}
	return fmt.Sprintf(systemPromptTemplate, serialized), nil
}

// BuildUserPrompt wraps the narrative verbatim. The symptom text must not be
// reinterpreted, truncated, or sanitized; altering it changes the clinical
// framing.
func BuildUserPrompt(symptoms string) string {
	return "Analyze these symptoms: " + symptoms
}
