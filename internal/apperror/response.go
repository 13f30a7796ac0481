package apperror

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Response is the envelope every endpoint answers with. Data holds the
// payload on success and the error message on failure.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// NewResponse builds an envelope; Success is derived from the status.
func NewResponse(status int, data interface{}, message string) Response {
	return Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	}
}

var errorStatusMap = map[ErrorCode]int{
	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,

	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,

	ErrInvalidReference: http.StatusBadRequest,
	ErrMissingField:     http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
	ErrConflict:         http.StatusConflict,
}

// StatusOf maps an error to its HTTP status.
func StatusOf(err error) int {
	status := errorStatusMap[CodeOf(err)]
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return status
}

// HandleError writes err as an envelope. Errors that are not AppErrors are
// reported as internal without leaking their text.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		message := "Internal Server Error"
		c.JSON(http.StatusInternalServerError, NewResponse(http.StatusInternalServerError, message, message))
		return
	}

	status := StatusOf(appErr)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, NewResponse(status, appErr.Message, appErr.Message))
}

// HandleSuccess writes data with the given status.
func HandleSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, NewResponse(status, data, message))
}
