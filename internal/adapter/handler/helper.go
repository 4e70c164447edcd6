package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-assistant/errors"
	"github.com/johnquangdev/meeting-action-assistant/internal/adapter/dto/common"
)

// getRequestID reads X-Request-ID from the request, falling back to the
// id the request-id middleware put on the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a success body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError renders err as {success:false, error}. Soft AppErrors keep
// status 200; anything else is logged with its cause and gets a generic
// message.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
		}
		for k, v := range appErr.Details {
			fields = append(fields, zap.String(k, v))
		}
		if appErr.IsSoft() {
			logger.Info("http.response.soft_error", append(fields, zap.String("message", appErr.Message))...)
		} else {
			logger.Error("http.response.error", append(fields, zap.Error(appErr.Raw))...)
		}
	}

	body := common.ErrorResponse{
		Success: false,
		Error:   appErr.Message,
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(appErr.HTTPCode)
	}
	return c.JSON(appErr.HTTPCode, body)
}

// NewHTTPErrorHandler normalizes framework errors (unknown route, wrong
// method, panics) into the same error body as the handlers
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr errors.AppError
		var he *echo.HTTPError
		switch {
		case stdErrors.As(err, &appErr):
		case stdErrors.As(err, &he):
			appErr = fromHTTPError(he)
		default:
			appErr = errors.ErrInternal(err)
		}

		if herr := HandleError(logger, c, appErr); herr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(herr))
		}
	}
}

func fromHTTPError(he *echo.HTTPError) errors.AppError {
	switch he.Code {
	case http.StatusNotFound:
		return errors.ErrRouteNotFound()
	case http.StatusMethodNotAllowed:
		return errors.ErrMethodNotAllowed()
	}
	if he.Code >= http.StatusInternalServerError {
		return errors.ErrInternal(he)
	}
	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}
	return errors.AppError{
		Raw:      he,
		HTTPCode: he.Code,
		Code:     errors.ErrorCode_INVALID_ARGUMENT,
		Message:  msg,
	}
}
