package configs

import (
	"fmt"
	"log"
	"sync"

	"github.com/tmc/langchaingo/llms/openai"
)

// The LLM client is a process-wide collaborator: constructed once on
// first use, then shared read-only. Request handlers must never build
// their own client.

var (
	chatLLMOnce sync.Once
	chatLLM     *openai.LLM
	chatLLMErr  error

	generateLLMOnce sync.Once
	generateLLM     *openai.LLM
	generateLLMErr  error
)

func newLLM(model string) (*openai.LLM, error) {
	if LoadENV.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	opts := []openai.Option{
		openai.WithToken(LoadENV.OpenAIKey),
		openai.WithModel(model),
	}
	if LoadENV.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(LoadENV.OpenAIBaseURL))
	}

	return openai.New(opts...)
}

// GetChatLLM returns the shared chat-completion client.
func GetChatLLM() (*openai.LLM, error) {
	chatLLMOnce.Do(func() {
		model := LoadENV.ChatModel
		if model == "" {
			model = "gpt-4"
		}
		chatLLM, chatLLMErr = newLLM(model)
		if chatLLMErr != nil {
			log.Printf("❌ Failed to initialize chat LLM client: %v", chatLLMErr)
			return
		}
		log.Println("✅ Chat LLM client initialized.")
	})
	return chatLLM, chatLLMErr
}

// GetGenerateLLM returns the shared text-generation client used for
// product descriptions.
func GetGenerateLLM() (*openai.LLM, error) {
	generateLLMOnce.Do(func() {
		model := LoadENV.GenerateModel
		if model == "" {
			model = "gpt-3.5-turbo-instruct"
		}
		generateLLM, generateLLMErr = newLLM(model)
		if generateLLMErr != nil {
			log.Printf("❌ Failed to initialize generation LLM client: %v", generateLLMErr)
			return
		}
		log.Println("✅ Generation LLM client initialized.")
	})
	return generateLLM, generateLLMErr
}
