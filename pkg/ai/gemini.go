package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient runs chat completions against the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client. A missing key yields an
// unconfigured client instead of an error.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig, model string, opts ...genai.HTTPOptions) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	c := &GeminiClient{model: model}
	if cfg == nil || cfg.APIKey == "" {
		return c, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(opts) > 0 {
		cc.HTTPOptions = opts[0]
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

// Name returns the provider name
func (c *GeminiClient) Name() string { return "Gemini" }

// CredentialEnv names the environment variable holding the credential
func (c *GeminiClient) CredentialEnv() string { return "GEMINI_API_KEY" }

// Configured reports whether a credential is present
func (c *GeminiClient) Configured() bool { return c.client != nil }

// Complete runs a single-turn generation and returns the concatenated text parts
func (c *GeminiClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	gcc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		MaxOutputTokens:   int32(req.MaxTokens),
		ResponseMIMEType:  "application/json",
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), gcc)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		return sb.String(), nil
	}

	return "", fmt.Errorf("empty response from gemini")
}
