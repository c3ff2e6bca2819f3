package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the wire envelope. The isSuccess/value/message/errors
// quadruple mirrors the application result; status, timestamp and
// request_id are transport extras.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	IsSuccess bool        `json:"isSuccess"`
	Message   string      `json:"message"`
	Value     T           `json:"value"`
	Errors    []string    `json:"errors"`
	Details   interface{} `json:"details,omitempty"`
}

// Success writes a success envelope to the response.
func Success[T any](c *gin.Context, status int, value T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		IsSuccess: true,
		Message:   message,
		Value:     value,
		Errors:    []string{},
	})
}

// Error writes a failure envelope. details carries field-level validation
// output when present.
func Error[T any](c *gin.Context, status int, message string, errs []string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Message:   message,
		Errors:    errs,
		Details:   details,
	})
}

// AbortError writes a failure envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	c.Abort()
	Error[any](c, status, message, nil, details)
}
