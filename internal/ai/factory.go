package ai

import (
	"fmt"

	"github.com/carebridge/symptomdesk/internal/ai/groq"
	"github.com/carebridge/symptomdesk/internal/ai/openai"
	"github.com/carebridge/symptomdesk/internal/config"
	"github.com/carebridge/symptomdesk/pkg/models"
)

// NewProvider constructs the appropriate completion provider based on config.
// Called once at server startup.
func NewProvider(cfg config.AIConfig) (models.CompletionProvider, error) {
	switch cfg.Provider {
	case "groq":
		return groq.NewProvider(cfg.Groq), nil
	case "openai":
		return openai.NewProvider(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of groq, openai", cfg.Provider)
	}
}
