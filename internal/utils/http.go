package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/logger"
)

const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"
	MsgInternalError    = "Internal server error"
	MsgDatabaseError    = "Database error"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// ErrorResponseHandler sends {"error": message} with statusCode
func ErrorResponseHandler(c echo.Context, statusCode int, message interface{}) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowedResponse sends a 405 Method Not Allowed response
func MethodNotAllowedResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusConflict, message)
}

// DatabaseErrorResponse sends a 500 response for storage failures
func DatabaseErrorResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, MsgDatabaseError)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, MsgInternalError)
}

// HTTPErrorHandler renders errors that reach Echo as {"error": ...} bodies.
// Router misses become 404 and wrong methods 405 without reaching a handler.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := interface{}(MsgInternalError)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch code {
		case http.StatusNotFound:
			message = MsgNotFound
		case http.StatusMethodNotAllowed:
			message = MsgMethodNotAllowed
		case http.StatusInternalServerError:
			message = MsgInternalError
		default:
			message = fmt.Sprint(he.Message)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Unhandled request error",
			logger.String("path", c.Request().URL.Path),
			logger.Err(err))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = ErrorResponseHandler(c, code, message)
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", logger.Err(writeErr))
	}
}
