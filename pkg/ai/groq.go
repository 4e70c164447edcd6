package ai

import (
	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

const (
	defaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	defaultGroqChatModel = "llama-3.3-70b-versatile"
)

// NewGroqClient creates a chat client for Groq's OpenAI-compatible API.
// Groq is only used for chat; transcription stays with the STT provider.
func NewGroqClient(cfg *config.GroqConfig, chatModel string) *OpenAIClient {
	var apiKey, base string
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
	}
	if base == "" {
		base = defaultGroqBaseURL
	}
	if chatModel == "" {
		chatModel = defaultGroqChatModel
	}
	return newOpenAICompatible("Groq", "GROQ_API_KEY", apiKey, base, chatModel, "")
}
