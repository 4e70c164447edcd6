package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-assistant/internal/domain/entities"
	ucErrors "github.com/johnquangdev/meeting-action-assistant/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-action-assistant/pkg/ai"
)

// ScratchStore holds uploaded files between the upload and transcription requests
type ScratchStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}

// Provider is the part shared by every external AI client
type Provider interface {
	Name() string
	CredentialEnv() string
	Configured() bool
}

// Transcriber converts audio to plain text
type Transcriber interface {
	Provider
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// ChatCompleter runs a single-turn chat completion
type ChatCompleter interface {
	Provider
	Complete(ctx context.Context, req pkgai.ChatRequest) (string, error)
}

// Service defines the upload, transcription and extraction pipeline
type Service interface {
	Upload(ctx context.Context, in UploadInput) (*entities.StoredUpload, error)
	Transcribe(ctx context.Context, filename string) (string, error)
	Extract(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error)
}

// UploadInput is one file received by the upload endpoint.
// Size is the declared size, or <= 0 when unknown.
type UploadInput struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Options carries the request limits
type Options struct {
	MaxUploadSize       int64
	MaxTranscriptLength int
}

type aiService struct {
	store       ScratchStore
	transcriber Transcriber
	completer   ChatCompleter
	parser      *Parser
	clock       Clock
	opts        Options
	logger      *zap.Logger
}

// NewAIService constructs the pipeline service
func NewAIService(
	store ScratchStore,
	transcriber Transcriber,
	completer ChatCompleter,
	parser *Parser,
	clock Clock,
	opts Options,
	logger *zap.Logger,
) Service {
	if parser == nil {
		parser = NewParser(nil)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &aiService{
		store:       store,
		transcriber: transcriber,
		completer:   completer,
		parser:      parser,
		clock:       clock,
		opts:        opts,
		logger:      logger,
	}
}

var errBodyTooLarge = errors.New("upload body exceeds limit")

// Upload validates the file and writes it to the scratch store under a
// timestamp-prefixed name
func (s *aiService) Upload(ctx context.Context, in UploadInput) (*entities.StoredUpload, error) {
	original := entities.BaseName(in.Filename)
	ext := entities.Extension(original)

	kind, ok := entities.MediaKind(original)
	if !ok {
		if s.logger != nil {
			s.logger.Info("upload rejected: unsupported type",
				zap.String("filename", original),
				zap.String("extension", ext),
				zap.Strings("allowed", entities.AllowedExtensions()),
			)
		}
		return nil, fmt.Errorf("%w: %q", ucErrors.ErrUnsupportedFileType, ext)
	}

	if s.opts.MaxUploadSize > 0 && in.Size > s.opts.MaxUploadSize {
		if s.logger != nil {
			s.logger.Info("upload rejected: too large",
				zap.String("filename", original),
				zap.Int64("size", in.Size),
			)
		}
		return nil, fmt.Errorf("%w: %d bytes", ucErrors.ErrFileTooLarge, in.Size)
	}

	now := s.clock.Now().UTC()
	name := entities.StoredName(now, original)

	body := &countingReader{r: in.Body, limit: s.opts.MaxUploadSize}
	size := in.Size
	if size <= 0 {
		size = -1
	}

	location, err := s.store.Save(ctx, name, body, size, in.ContentType)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			return nil, fmt.Errorf("%w: body exceeds %d bytes", ucErrors.ErrFileTooLarge, s.opts.MaxUploadSize)
		}
		if s.logger != nil {
			s.logger.Error("failed to store upload",
				zap.String("filename", name),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("%w: %w", ucErrors.ErrUploadFailed, err)
	}

	if s.logger != nil {
		s.logger.Info("📁 File uploaded",
			zap.String("filename", name),
			zap.Int64("size", body.n),
		)
	}

	return &entities.StoredUpload{
		Name:         name,
		OriginalName: original,
		Extension:    ext,
		Kind:         kind,
		Size:         body.n,
		Path:         location,
		UploadedAt:   now,
	}, nil
}

// Transcribe sends a stored upload to the speech-to-text provider.
// The caller schedules removal of the file on success.
func (s *aiService) Transcribe(ctx context.Context, filename string) (string, error) {
	if !entities.ValidStoredName(filename) {
		return "", fmt.Errorf("%w: %q", ucErrors.ErrFileNotFound, filename)
	}

	audio, err := s.store.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, entities.ErrUploadNotFound) {
			if s.logger != nil {
				s.logger.Info("transcription requested for unknown file", zap.String("filename", filename))
			}
			return "", fmt.Errorf("%w: %q", ucErrors.ErrFileNotFound, filename)
		}
		return "", fmt.Errorf("open %s: %w", filename, err)
	}
	defer audio.Close()

	if s.transcriber == nil || !s.transcriber.Configured() {
		return "", s.notConfigured(s.transcriber, "transcription", filename)
	}

	start := time.Now()
	text, err := s.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Transcription failed",
				zap.String("provider", s.transcriber.Name()),
				zap.String("filename", filename),
				zap.Error(err),
			)
		}
		return "", fmt.Errorf("%w: %w", ucErrors.ErrTranscriptionFailed, err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Transcription completed",
			zap.String("provider", s.transcriber.Name()),
			zap.String("filename", filename),
			zap.Int("transcript_length", len(text)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return text, nil
}

// Extract asks the language model for a summary and action items. Replies
// that are not valid analysis JSON degrade to the fallback analysis.
func (s *aiService) Extract(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ucErrors.ErrEmptyTranscript
	}

	length := utf8.RuneCountInString(transcript)
	if s.opts.MaxTranscriptLength > 0 && length > s.opts.MaxTranscriptLength {
		if s.logger != nil {
			s.logger.Info("extraction rejected: transcript too long", zap.Int("transcript_length", length))
		}
		return nil, fmt.Errorf("%w: %d characters", ucErrors.ErrTranscriptTooLong, length)
	}

	if s.completer == nil || !s.completer.Configured() {
		return nil, s.notConfigured(s.completer, "analysis", "")
	}

	reply, err := s.completer.Complete(ctx, pkgai.ChatRequest{
		System:      systemPrompt,
		Prompt:      BuildAnalysisPrompt(transcript),
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Analysis failed",
				zap.String("provider", s.completer.Name()),
				zap.Int("transcript_length", length),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("%w: %w", ucErrors.ErrAnalysisFailed, err)
	}

	analysis, perr := s.parser.ParseOrFallback(reply)
	if perr != nil {
		if s.logger != nil {
			s.logger.Warn("model reply unusable, returning fallback analysis",
				zap.String("provider", s.completer.Name()),
				zap.Int("transcript_length", length),
				zap.Int("reply_length", len(reply)),
				zap.Error(perr),
			)
		}
		return analysis, nil
	}

	if s.logger != nil {
		s.logger.Info("✅ Analysis completed",
			zap.String("provider", s.completer.Name()),
			zap.Int("transcript_length", length),
			zap.Int("action_items", len(analysis.ActionItems)),
		)
	}
	return analysis, nil
}

func (s *aiService) notConfigured(p Provider, op, filename string) error {
	err := &ucErrors.NotConfiguredError{Provider: "AI provider", EnvKey: "API key"}
	if p != nil {
		err = &ucErrors.NotConfiguredError{Provider: p.Name(), EnvKey: p.CredentialEnv()}
	}
	if s.logger != nil {
		s.logger.Warn("provider not configured",
			zap.String("operation", op),
			zap.String("provider", err.Provider),
			zap.String("filename", filename),
		)
	}
	return err
}

// countingReader counts bytes read and fails once more than limit bytes
// arrive. A limit <= 0 disables the check.
type countingReader struct {
	r     io.Reader
	limit int64
	n     int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if c.limit > 0 && c.n > c.limit {
		return n, errBodyTooLarge
	}
	return n, err
}
