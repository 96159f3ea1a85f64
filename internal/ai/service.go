package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// Fixed fallback text for failure-shaped results. The end user never sees a
// raw transport error or stack trace, only these plus a short cause.
const (
	FallbackAdvice     = "Unable to analyze symptoms at this time."
	FallbackDisclaimer = "This is not medical advice. Please consult a healthcare professional."
)

// Service orchestrates one symptom analysis: prompt construction, the
// completion call, and schema validation of the returned payload. It holds
// no per-request state; every invocation is independent.
type Service struct {
	provider    models.CompletionProvider
	timeout     time.Duration
	temperature float32
	maxTokens   int
}

// NewService creates a new analysis Service.
func NewService(provider models.CompletionProvider, timeout time.Duration, temperature float32, maxTokens int) *Service {
	return &Service{
		provider:    provider,
		timeout:     timeout,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Provider returns the identifier of the configured backend.
func (s *Service) Provider() string { return s.provider.Name() }

// Analyze maps a symptom narrative and the physician directory to an
// AnalysisResult. It never returns an error: every failure during the
// completion call or payload validation terminates in a failure-shaped
// result, so callers need no separate error-handling branch. The caller is
// responsible for rejecting empty narratives before invoking this.
func (s *Service) Analyze(ctx context.Context, symptoms string, directory []models.PhysicianRecord) *models.AnalysisResult {
	systemPrompt, err := BuildSystemPrompt(directory)
	if err != nil {
		slog.Error("building system prompt", "error", err)
		return failureResult("internal error preparing the analysis request")
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := s.provider.Complete(callCtx, models.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   BuildUserPrompt(symptoms),
		Temperature:  s.temperature,
		MaxTokens:    s.maxTokens,
	})
	if err != nil {
		classified := classifyBackendError(err)
		slog.Warn("completion call failed",
			"provider", s.provider.Name(),
			"model", s.provider.Model(),
			"error", classified,
		)
		return failureResult(classified.Error())
	}

	if strings.TrimSpace(payload) == "" {
		slog.Warn("completion call returned no content",
			"provider", s.provider.Name(),
			"model", s.provider.Model(),
		)
		return failureResult(ErrEmptyCompletion.Error())
	}

	result, err := ParseAnalysis(payload)
	if err != nil {
		slog.Warn("completion payload rejected",
			"provider", s.provider.Name(),
			"model", s.provider.Model(),
			"error", err,
		)
		return failureResult(err.Error())
	}

	return result
}

// failureResult builds the well-formed fallback result mandated for every
// failure path: error marker set, both sequences empty, fixed advice and
// disclaimer text.
func failureResult(cause string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Error:              cause,
		PossibleConditions: []models.ConditionAssessment{},
		RecommendedDoctors: []models.RecommendedDoctor{},
		GeneralAdvice:      FallbackAdvice,
		Disclaimer:         FallbackDisclaimer,
	}
}
