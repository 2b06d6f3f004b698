// Package response defines consistent HTTP response structures.
// Successful responses carry the resource itself; failures carry an Error.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeapi/src/core/domain"
)

// Error is the body of every failed request.
type Error struct {
	// Error is a human-readable description
	Error string `json:"error"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// Message is the body of a confirmation with no resource.
type Message struct {
	Message string `json:"message"`
}

// Messages returned to clients. Storage causes are never exposed.
const (
	msgInternal       = "Server error"
	msgInvalidPayload = "Invalid JSON payload"
	MsgRouteNotFound  = "The requested resource was not found"
)

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error:     message,
		RequestID: requestID,
	})
}

// InvalidPayload sends a 400 response for bodies that are not JSON objects.
func InvalidPayload(c *gin.Context, requestID string) {
	BadRequest(c, msgInvalidPayload, requestID)
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error:     message,
		Field:     field,
		RequestID: requestID,
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error:     message,
		RequestID: requestID,
	})
}

// JokeNotFound sends the 404 used for unknown or malformed ids.
func JokeNotFound(c *gin.Context, requestID string) {
	NotFound(c, domain.MsgJokeNotFound, requestID)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error:     msgInternal,
		RequestID: requestID,
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// Anything that is neither a validation nor a not found error is a 500.
func FromDomainError(c *gin.Context, err error, requestID string) {
	switch {
	case domain.IsValidationError(err):
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			ValidationError(c, domainErr.Field, domainErr.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsNotFound(err):
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Message != "" {
			NotFound(c, domainErr.Message, requestID)
		} else {
			JokeNotFound(c, requestID)
		}
	default:
		InternalError(c, requestID)
	}
}
