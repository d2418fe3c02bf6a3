package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"main/utils"

	"github.com/sashabaranov/go-openai"
)

// ErrLLMNotConfigured reports a missing completion API credential. Callers
// degrade to local fallbacks instead of failing.
var ErrLLMNotConfigured = errors.New("completion API key is not configured")

// TextGenerator is the AI text-completion collaborator: system instructions
// and a user prompt in, generated text or a failure out.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error)
}

type LLMService struct {
	client *openai.Client
	model  string
}

// NewLLMService builds the OpenAI-backed generator from the environment.
// With no API key set it still returns a service; every Generate call then
// reports ErrLLMNotConfigured and the caller's fallback path takes over.
func NewLLMService() *LLMService {
	apiKey := utils.GetEnvAsString("OPENAI_API_KEY", "")
	model := utils.GetEnvAsString("OPENAI_MODEL", openai.GPT4TurboPreview)

	svc := &LLMService{model: model}
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set; assistant falls back to local generation")
		return svc
	}
	svc.client = openai.NewClient(apiKey)
	return svc
}

func (s *LLMService) Generate(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	if s.client == nil {
		return "", ErrLLMNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		utils.TrackError("llm", "completion_failed")
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		utils.TrackError("llm", "empty_response")
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
