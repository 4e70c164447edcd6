package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

var errTranscriptPending = errors.New("transcript still processing")

// AssemblyAIClient transcribes audio with the official AssemblyAI SDK
type AssemblyAIClient struct {
	apiKey       string
	client       *aai.Client
	pollInterval time.Duration
	maxPoll      time.Duration
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}

	return &AssemblyAIClient{
		apiKey:       apiKey,
		client:       aai.NewClientWithOptions(opts...),
		pollInterval: 2 * time.Second,
		maxPoll:      10 * time.Second,
	}
}

// Name returns the provider name
func (c *AssemblyAIClient) Name() string { return "AssemblyAI" }

// CredentialEnv names the environment variable holding the credential
func (c *AssemblyAIClient) CredentialEnv() string { return "ASSEMBLYAI_API_KEY" }

// Configured reports whether a credential is present
func (c *AssemblyAIClient) Configured() bool { return c.apiKey != "" }

// Transcribe uploads the audio, submits a transcript job and waits for it.
// Waiting is bounded only by ctx.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	submitted, err := c.client.Transcripts.SubmitFromReader(ctx, audio, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai submit %s: %w", filename, err)
	}
	transcriptID := deref(submitted.ID)
	if transcriptID == "" {
		return "", fmt.Errorf("assemblyai submit %s: missing transcript id", filename)
	}

	var text string
	poll := func() error {
		transcript, err := c.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("assemblyai get %s: %w", transcriptID, err))
		}
		switch transcript.Status {
		case aai.TranscriptStatusCompleted:
			text = deref(transcript.Text)
			return nil
		case aai.TranscriptStatusError:
			return backoff.Permanent(fmt.Errorf("assemblyai transcript %s failed: %s", transcriptID, deref(transcript.Error)))
		default:
			return errTranscriptPending
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.pollInterval
	bo.MaxInterval = c.maxPoll
	bo.MaxElapsedTime = 0

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
