// Package groq implements the completion provider against Groq's
// OpenAI-compatible chat completion API.
package groq

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/carebridge/symptomdesk/internal/config"
	"github.com/carebridge/symptomdesk/pkg/models"
)

// Provider implements models.CompletionProvider using Groq.
type Provider struct {
	client *openai.Client
	model  string
}

// NewProvider creates a Groq-backed provider. Groq speaks the OpenAI wire
// protocol, so the client only needs the Groq base URL swapped in.
func NewProvider(cfg config.GroqConfig) *Provider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	return &Provider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string  { return "groq" }
func (p *Provider) Model() string { return p.model }

// Complete issues a single chat completion constrained to a JSON object and
// returns the raw completion text. Transport errors pass through untouched;
// classification belongs to the caller.
func (p *Provider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

var _ models.CompletionProvider = (*Provider)(nil)
