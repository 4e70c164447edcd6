package ai

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

const (
	defaultOpenAIChatModel  = openai.GPT4
	defaultOpenAIAudioModel = openai.Whisper1
)

// OpenAIClient talks to OpenAI or any OpenAI-compatible endpoint (Groq).
// One credential covers both transcription and chat.
type OpenAIClient struct {
	*openai.Client
	name       string
	envKey     string
	apiKey     string
	chatModel  string
	audioModel string
}

// NewOpenAIClient creates a client from the combined OpenAI credential
func NewOpenAIClient(cfg *config.OpenAIConfig, chatModel, audioModel string) *OpenAIClient {
	var apiKey, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}
	if chatModel == "" {
		chatModel = defaultOpenAIChatModel
	}
	if audioModel == "" {
		audioModel = defaultOpenAIAudioModel
	}
	return newOpenAICompatible("OpenAI", "OPENAI_API_KEY", apiKey, baseURL, chatModel, audioModel)
}

func newOpenAICompatible(name, envKey, apiKey, baseURL, chatModel, audioModel string) *OpenAIClient {
	occ := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		occ.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIClient{
		Client:     openai.NewClientWithConfig(occ),
		name:       name,
		envKey:     envKey,
		apiKey:     apiKey,
		chatModel:  chatModel,
		audioModel: audioModel,
	}
}

// Name returns the provider name used in logs and configuration errors
func (c *OpenAIClient) Name() string { return c.name }

// CredentialEnv names the environment variable holding the credential
func (c *OpenAIClient) CredentialEnv() string { return c.envKey }

// Configured reports whether a credential is present
func (c *OpenAIClient) Configured() bool { return c.apiKey != "" }

// ChatModel is the model used by Complete
func (c *OpenAIClient) ChatModel() string { return c.chatModel }

// AudioModel is the model used by Transcribe
func (c *OpenAIClient) AudioModel() string { return c.audioModel }

// Transcribe streams audio to the transcription endpoint and returns plain text
func (c *OpenAIClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	resp, err := c.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.audioModel,
		FilePath: filename,
		Reader:   audio,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("%s transcription: %w", strings.ToLower(c.name), err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// Complete runs a single-turn chat completion and returns the assistant content
func (c *OpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", strings.ToLower(c.name), err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", strings.ToLower(c.name))
	}
	return resp.Choices[0].Message.Content, nil
}
