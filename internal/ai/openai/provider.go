// Package openai implements the completion provider against the OpenAI API.
package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/carebridge/symptomdesk/internal/config"
	"github.com/carebridge/symptomdesk/pkg/models"
)

// Provider implements models.CompletionProvider using OpenAI.
type Provider struct {
	client *goopenai.Client
	model  string
}

func NewProvider(cfg config.OpenAIConfig) *Provider {
	return &Provider{
		client: goopenai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string  { return "openai" }
func (p *Provider) Model() string { return p.model }

func (p *Provider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: p.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
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
