package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"newslens/utils/errors"
	"newslens/utils/logger"
)

// handleError converts errors to HTTP responses, enriching coded errors with
// request context before logging.
func handleError(c echo.Context, err error, operation string) error {
	var appErr *errors.AppContextError
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewUnknownContextError(
			"unexpected error",
			"rest", "ContentHandler", operation,
			err,
			nil,
		)
	}

	logger.Logger.Error("request failed",
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"code", appErr.Code,
		"error", appErr.Error(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID))

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// badRequest is the short path for malformed client input.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
