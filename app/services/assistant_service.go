package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// descriptionMaxTokens caps generated product descriptions.
const descriptionMaxTokens = 50

// LLMClients supplies the shared chat and generation models. Both are
// constructed once per process and injected here.
type LLMClients struct {
	Chat     func() (llms.Model, error)
	Generate func() (llms.Model, error)
}

// AssistantService is the glue to the external chat and text-generation
// collaborators. Callers treat any error as "feature unavailable";
// nothing here participates in cart or checkout operations.
type AssistantService struct {
	clients LLMClients
}

func NewAssistantService(clients LLMClients) *AssistantService {
	return &AssistantService{clients: clients}
}

// Chat sends the user's message to the chat model and returns the reply.
func (s *AssistantService) Chat(ctx context.Context, message string) (string, error) {
	llm, err := s.clients.Chat()
	if err != nil {
		return "", fmt.Errorf("chat model unavailable: %w", err)
	}

	reply, err := llms.GenerateFromSinglePrompt(ctx, llm, message)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	return reply, nil
}

// GenerateDescription produces a short product description for a name.
func (s *AssistantService) GenerateDescription(ctx context.Context, name string) (string, error) {
	llm, err := s.clients.Generate()
	if err != nil {
		return "", fmt.Errorf("generation model unavailable: %w", err)
	}

	prompt := fmt.Sprintf("Write a product description for %s:", name)
	text, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt, llms.WithMaxTokens(descriptionMaxTokens))
	if err != nil {
		return "", fmt.Errorf("description generation failed: %w", err)
	}
	return text, nil
}
