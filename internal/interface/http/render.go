package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-access-management/go-backend/internal/application"
	"user-access-management/go-backend/pkg/response"
)

func statusFor(kind application.FailureKind) int {
	switch kind {
	case application.FailureValidation:
		return http.StatusBadRequest
	case application.FailureConflict:
		return http.StatusConflict
	case application.FailureNotFound:
		return http.StatusNotFound
	case application.FailureAuthentication:
		return http.StatusUnauthorized
	case application.FailurePersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// render maps an application result onto the wire envelope, choosing the
// status from the failure kind.
func render[T any](c *gin.Context, successStatus int, res application.Result[T]) {
	if res.IsSuccess {
		response.Success(c, successStatus, res.Value, res.Message)
		return
	}
	response.Error[T](c, statusFor(res.Kind()), res.Message, res.Errors, nil)
}
