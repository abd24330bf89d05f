package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// APIError is the uniform error value handlers raise: a human-readable
// message plus the HTTP status it should be answered with.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func BadRequest(format string, args ...interface{}) *APIError {
	return &APIError{Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}

func NotFound(format string, args ...interface{}) *APIError {
	return &APIError{Message: fmt.Sprintf(format, args...), Status: http.StatusNotFound}
}

func Conflict(format string, args ...interface{}) *APIError {
	return &APIError{Message: fmt.Sprintf(format, args...), Status: http.StatusConflict}
}

// Fail is the boundary translator: every handler error funnels through
// here and comes out as {error:{message,status}}.
//
// Store errors that are not an APIError are mapped by kind: a missing row
// becomes 404 and a uniqueness-constraint violation becomes 409, so two
// racing creates both passing a duplicate pre-check still answer Conflict
// instead of an opaque 500. Anything else is a 500 with a generic message.
func Fail(c *gin.Context, err error) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		// use as-is
	case errors.Is(err, gorm.ErrRecordNotFound):
		apiErr = &APIError{Message: "not found", Status: http.StatusNotFound}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		apiErr = &APIError{Message: "duplicate key", Status: http.StatusConflict}
	default:
		apiErr = &APIError{Message: "internal server error", Status: http.StatusInternalServerError}
	}

	c.JSON(apiErr.Status, gin.H{"error": apiErr})
}
