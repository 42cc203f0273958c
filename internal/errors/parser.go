package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo is the parsed representation of a low-level error.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts database and infrastructure errors into a stable code
// and a message safe to show users. The context string hints at the entity
// being worked on (e.g. "profile", "document").
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong on our side."}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	// PostgreSQL unique constraint violation (23505)
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Not-null constraint violation (23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing."}
	}

	// Network / connection failures
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "A backing service is unreachable. Please try again shortly.",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: "The request could not be saved. Please try again shortly.",
	}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	switch {
	case strings.Contains(errStr, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "Email is already registered."}
	case strings.Contains(errStr, "identifier_bindings"), strings.Contains(errStr, "idx_identifier_kind_value"):
		return ErrorInfo{Code: RegistryIdentifierExists, Message: "This identifier already exists for another account."}
	case strings.Contains(errStr, "doc_id"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This document reference already exists."}
	default:
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists."}
	}
}

func notFoundMessage(context string) string {
	switch {
	case strings.Contains(context, "profile"):
		return "Business profile not found."
	case strings.Contains(context, "document"):
		return "Document not found."
	case strings.Contains(context, "user"), strings.Contains(context, "account"):
		return "User not found."
	case strings.Contains(context, "scheme"):
		return "Scheme not found."
	default:
		return "The requested data was not found."
	}
}

// ParseAndRespond parses err and writes the matching response.
func ParseAndRespond(c *gin.Context, statusCode int, err error, context string) {
	info := ParseError(err, context)
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	RespondWithError(c, statusCode, info.Code, info.Message)
}
