package common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONErrorHandler writes errors returned by handlers and middleware as {"error": "..."}.
// Messages of non-HTTP errors are logged but never sent to the client.
func JSONErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok && m != "" {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		slog.Error("unhandled error", "method", ctx.Request().Method, "uri", ctx.Request().RequestURI, "error", err)
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(code)
	} else {
		writeErr = ctx.JSON(code, ErrorResponse{Error: message})
	}
	if writeErr != nil {
		slog.Error("failed to write error response", "status", code, "error", writeErr)
	}
}
