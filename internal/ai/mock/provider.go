// Package mock provides a canned completion provider for tests.
package mock

import (
	"context"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// conformantPayload is a minimal response that satisfies the analysis schema.
const conformantPayload = `{
  "possible_conditions": [
    {
      "condition": "Tension headache",
      "likelihood": "medium",
      "description": "Common headache associated with stress or posture",
      "general_treatment": "Rest, hydration, over-the-counter analgesics",
      "recommended_specialist": "Neurology"
    },
    {
      "condition": "Migraine",
      "likelihood": "low",
      "description": "Recurrent headache with possible aura",
      "general_treatment": "Trigger avoidance, prescribed medication",
      "recommended_specialist": "Neurology"
    }
  ],
  "recommended_doctors": [
    {
      "name": "Dr. Robert Smith",
      "specialization": "Neurology",
      "experience": "12 years",
      "contact": "555-0124"
    }
  ],
  "general_advice": "Monitor symptoms and rest.",
  "disclaimer": "This is not medical advice. Please consult a healthcare professional."
}`

// Provider satisfies models.CompletionProvider for testing.
type Provider struct {
	Name_        string
	Model_       string
	CompleteFunc func(ctx context.Context, req models.CompletionRequest) (string, error)
}

func (m *Provider) Name() string  { return m.Name_ }
func (m *Provider) Model() string { return m.Model_ }

func (m *Provider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return conformantPayload, nil
}

// NewProvider returns a Provider with a schema-conformant default response.
func NewProvider() *Provider {
	return &Provider{
		Name_:  "mock",
		Model_: "mock-v1",
		CompleteFunc: func(_ context.Context, _ models.CompletionRequest) (string, error) {
			return conformantPayload, nil
		},
	}
}

// NewStaticProvider returns a Provider that always replies with payload.
func NewStaticProvider(payload string) *Provider {
	return &Provider{
		Name_:  "mock",
		Model_: "mock-v1",
		CompleteFunc: func(_ context.Context, _ models.CompletionRequest) (string, error) {
			return payload, nil
		},
	}
}

// NewFailingProvider returns a Provider that always returns the given error.
func NewFailingProvider(err error) *Provider {
	return &Provider{
		Name_:  "mock-failing",
		Model_: "mock-v1",
		CompleteFunc: func(_ context.Context, _ models.CompletionRequest) (string, error) {
			return "", err
		},
	}
}

// NewTimeoutProvider returns a Provider that blocks until context is cancelled.
func NewTimeoutProvider() *Provider {
	return &Provider{
		Name_:  "mock-timeout",
		Model_: "mock-v1",
		CompleteFunc: func(ctx context.Context, _ models.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
}

// Compile-time check that Provider implements CompletionProvider.
var _ models.CompletionProvider = (*Provider)(nil)
