package handler

import (
	stdErrors "errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-assistant/errors"
	"github.com/johnquangdev/meeting-action-assistant/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-action-assistant/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/meeting-action-assistant/internal/usecase/ai"
	ucErrors "github.com/johnquangdev/meeting-action-assistant/internal/usecase/errors"
)

// multipartOverhead is the slack allowed on Content-Length for multipart framing
const multipartOverhead = 1 << 20

// CleanupScheduler accepts stored files for deferred deletion
type CleanupScheduler interface {
	Enqueue(name string)
}

// Limits are the request limits reported back in error messages
type Limits struct {
	MaxUploadSize       int64
	MaxTranscriptLength int
}

// AIController serves the upload, transcription and extraction endpoints
type AIController struct {
	svc     aiuse.Service
	cleanup CleanupScheduler
	limits  Limits
	logger  *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, cleanup CleanupScheduler, limits Limits, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, cleanup: cleanup, limits: limits, logger: logger}
}

// Upload stores an audio or video file for later transcription
// @Summary      Upload meeting recording
// @Description  Validates extension and size, stores the file under a timestamp-prefixed name
// @Tags         Meeting
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file                    true  "Audio or video file"
// @Success      200   {object}  meeting.UploadResponse  "Stored; or {success:false,error} on validation failure"
// @Router       /api/upload [post]
func (ac *AIController) Upload(c echo.Context) error {
	req := c.Request()
	if ac.limits.MaxUploadSize > 0 {
		limit := ac.limits.MaxUploadSize + multipartOverhead
		if req.ContentLength > limit {
			return HandleError(ac.logger, c, errors.ErrFileTooLarge(ac.limits.MaxUploadSize))
		}
		req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if stdErrors.As(err, &mbe) {
			return HandleError(ac.logger, c, errors.ErrFileTooLarge(ac.limits.MaxUploadSize))
		}
		if stdErrors.Is(err, http.ErrMissingFile) {
			return HandleError(ac.logger, c, errors.ErrMissingFile())
		}
		return HandleError(ac.logger, c, errors.ErrMissingFile().WithDetail("cause", err.Error()))
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrUploadFailed(err))
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	upload, err := ac.svc.Upload(req.Context(), aiuse.UploadInput{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: contentType,
		Body:        src,
	})
	if err != nil {
		return HandleError(ac.logger, c, ac.toAppError(err, fh.Filename))
	}

	return HandleSuccess(ac.logger, c, presenter.ToUploadResponse(upload, contentType))
}

// Transcribe sends a stored file to the speech-to-text provider
// @Summary      Transcribe uploaded file
// @Description  Returns the plain-text transcript; the stored file is deleted after a successful response
// @Tags         Meeting
// @Produce      json
// @Param        filename  path      string                         true  "Stored filename returned by upload"
// @Success      200       {object}  meeting.TranscriptionResponse  "Transcript; or {success:false,error} when not found or not configured"
// @Failure      500       {object}  common.ErrorResponse           "Transcription failed"
// @Router       /api/transcribe/{filename} [get]
func (ac *AIController) Transcribe(c echo.Context) error {
	var req meeting.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrFileNotFound(c.Param("filename")))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrFileNotFound(req.Filename))
	}

	// echo matches on RawPath when the request carried escapes the default
	// encoding would not produce; the param is still escaped in that case
	filename := req.Filename
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(filename); err == nil {
			filename = unescaped
		}
	}

	transcript, err := ac.svc.Transcribe(c.Request().Context(), filename)
	if err != nil {
		return HandleError(ac.logger, c, ac.toAppError(err, filename))
	}

	if ac.cleanup != nil {
		var once sync.Once
		c.Response().After(func() {
			once.Do(func() { ac.cleanup.Enqueue(filename) })
		})
	}

	return HandleSuccess(ac.logger, c, presenter.ToTranscriptionResponse(transcript))
}

// Extract asks the language model for a summary and action items
// @Summary      Extract summary and action items
// @Description  Malformed model output degrades to a fixed fallback summary with no action items
// @Tags         Meeting
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.ExtractRequest      true  "Transcript"
// @Success      200      {object}  meeting.ExtractionResponse  "Analysis; or {success:false,error} on empty input or missing configuration"
// @Failure      500      {object}  common.ErrorResponse        "Analysis failed"
// @Router       /api/extract [post]
func (ac *AIController) Extract(c echo.Context) error {
	var req meeting.ExtractRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload().WithDetail("cause", err.Error()))
	}

	analysis, err := ac.svc.Extract(c.Request().Context(), req.Transcript)
	if err != nil {
		return HandleError(ac.logger, c, ac.toAppError(err, ""))
	}

	return HandleSuccess(ac.logger, c, presenter.ToExtractionResponse(analysis))
}

// toAppError maps usecase errors onto the response taxonomy
func (ac *AIController) toAppError(err error, filename string) error {
	var nc *ucErrors.NotConfiguredError
	switch {
	case stdErrors.As(err, &nc):
		return errors.ErrAINotConfigured(nc.Provider, nc.EnvKey)
	case stdErrors.Is(err, ucErrors.ErrUnsupportedFileType):
		return errors.ErrUnsupportedFileType(filename)
	case stdErrors.Is(err, ucErrors.ErrFileTooLarge):
		return errors.ErrFileTooLarge(ac.limits.MaxUploadSize)
	case stdErrors.Is(err, ucErrors.ErrUploadFailed):
		return errors.ErrUploadFailed(err)
	case stdErrors.Is(err, ucErrors.ErrFileNotFound):
		return errors.ErrFileNotFound(filename)
	case stdErrors.Is(err, ucErrors.ErrTranscriptionFailed):
		return errors.ErrAITranscriptionFailed(err)
	case stdErrors.Is(err, ucErrors.ErrEmptyTranscript):
		return errors.ErrEmptyTranscript()
	case stdErrors.Is(err, ucErrors.ErrTranscriptTooLong):
		return errors.ErrTranscriptTooLong(ac.limits.MaxTranscriptLength)
	case stdErrors.Is(err, ucErrors.ErrAnalysisFailed):
		return errors.ErrAIAnalysisFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}
