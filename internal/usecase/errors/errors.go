package errors

import (
	"errors"
	"fmt"
)

// Upload errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUploadFailed        = errors.New("upload failed")
)

// Transcription errors
var (
	ErrFileNotFound        = errors.New("file not found")
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// Extraction errors
var (
	ErrEmptyTranscript   = errors.New("empty transcript")
	ErrTranscriptTooLong = errors.New("transcript too long")
	ErrAnalysisFailed    = errors.New("analysis failed")
)

// ErrProviderNotConfigured is matched by every NotConfiguredError
var ErrProviderNotConfigured = errors.New("provider not configured")

// NotConfiguredError reports a missing provider credential
type NotConfiguredError struct {
	Provider string
	EnvKey   string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s not configured: %s is empty", e.Provider, e.EnvKey)
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrProviderNotConfigured
}
