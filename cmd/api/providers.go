package main

import (
	"context"
	"fmt"

	aiuse "github.com/johnquangdev/meeting-action-assistant/internal/usecase/ai"
	pkgai "github.com/johnquangdev/meeting-action-assistant/pkg/ai"
	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

// newTranscriber picks the speech-to-text provider. A missing credential
// is not an error here; requests report it instead.
func newTranscriber(cfg *config.Config) (aiuse.Transcriber, error) {
	switch cfg.AI.STTProvider {
	case config.STTProviderOpenAI:
		return pkgai.NewOpenAIClient(&cfg.OpenAI, "", cfg.AI.STTModel), nil
	case config.STTProviderAssemblyAI:
		return pkgai.NewAssemblyAIClient(&cfg.Assembly), nil
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", cfg.AI.STTProvider)
	}
}

// newChatCompleter picks the language-model provider
func newChatCompleter(ctx context.Context, cfg *config.Config) (aiuse.ChatCompleter, error) {
	switch cfg.AI.LLMProvider {
	case config.LLMProviderOpenAI:
		return pkgai.NewOpenAIClient(&cfg.OpenAI, cfg.AI.LLMModel, ""), nil
	case config.LLMProviderGroq:
		return pkgai.NewGroqClient(&cfg.Groq, cfg.AI.LLMModel), nil
	case config.LLMProviderGemini:
		return pkgai.NewGeminiClient(ctx, &cfg.Gemini, cfg.AI.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.AI.LLMProvider)
	}
}
