package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type understood by the HTTP layer.
//
// Soft failures carry HTTPCode 200 and are rendered as {success:false, error}
// inside a normal response. Hard failures carry a 5xx HTTPCode; their Raw cause
// is logged and never serialized.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// IsSoft reports whether the error is rendered inside a success-shaped body
func (e AppError) IsSoft() bool {
	return e.HTTPCode < http.StatusBadRequest
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrRouteNotFound() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  "Endpoint not found",
	}
}

func ErrMethodNotAllowed() AppError {
	return AppError{
		HTTPCode: http.StatusMethodNotAllowed,
		Code:     ErrorCode_METHOD_NOT_ALLOWED,
		Message:  "Method not allowed",
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid request body",
	}
}

// Upload Errors
func ErrUnsupportedFileType(filename string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_UPLOAD_UNSUPPORTED_TYPE,
		Message:  "Unsupported file type. Please upload an audio or video file.",
	}.WithDetail("filename", filename)
}

func ErrFileTooLarge(maxBytes int64) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_UPLOAD_TOO_LARGE,
		Message:  fmt.Sprintf("File too large. Please upload a file smaller than %dMB.", maxBytes/(1024*1024)),
	}
}

func ErrMissingFile() AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_UPLOAD_MISSING_FILE,
		Message:  "No file provided",
	}
}

func ErrUploadFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_UPLOAD_FAILED,
		Message:  "Upload failed",
	}
}

// Transcription Errors
func ErrFileNotFound(filename string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_FILE_NOT_FOUND,
		Message:  "File not found. Please upload the file first.",
	}.WithDetail("filename", filename)
}

func ErrAINotConfigured(service, envKey string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_AI_NOT_CONFIGURED,
		Message:  fmt.Sprintf("%s API key not configured. Please set %s environment variable.", service, envKey),
	}.WithDetail("service", service)
}

func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:  "Transcription failed",
	}
}

// Extraction Errors
func ErrEmptyTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_TRANSCRIPT_EMPTY,
		Message:  "Empty transcript provided",
	}
}

func ErrTranscriptTooLong(maxChars int) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_TRANSCRIPT_TOO_LONG,
		Message:  fmt.Sprintf("Transcript too long. Maximum length: %d characters", maxChars),
	}
}

func ErrAIAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_ANALYSIS_FAILED,
		Message:  "Analysis failed",
	}
}
