package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every failure as {"error": message}. Domain errors map
// to 404 and 400, router errors keep their status, anything else is a 500
// and gets logged.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := describe(err, ctx.Request())
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"uri", ctx.Request().URL.RequestURI(),
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, Error{Error: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func describe(err error, r *http.Request) (int, string) {
	var (
		notFound   *errs.ObjectNotFoundError
		validation *errs.ValidationError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s id not found: %v", capitalize(notFound.ParamName), notFound.ID)
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		switch httpErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, "Path not found: " + r.URL.RequestURI()
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", r.Method, r.URL.RequestURI())
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
