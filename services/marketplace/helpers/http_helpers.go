package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"spicegate/internal/auctions"
	"spicegate/internal/marketerrors"
	"spicegate/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleBindError sends a standardized JSON error for binding failures.
// Missing required fields are reported per field like service validation errors.
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)

	var details gin.H
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[jsonFieldName(fe.Field())] = fe.Tag()
		}
		details = gin.H{"fields": fields}
	}

	utils.JSONErrorDetails(c, http.StatusBadRequest, wrappedErr, "invalid request payload", details)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// jsonFieldName lowercases the first letter of a Go field name, matching the DTO tags.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, marketerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "missing or invalid session"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "user type not allowed"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, marketerrors.ErrAuctionActive):
		return http.StatusConflict, "auction is currently active"
	case errors.Is(err, marketerrors.ErrInvalidTransition):
		return http.StatusConflict, "auction status change not allowed"
	case errors.Is(err, marketerrors.ErrInvalidSchedule):
		return http.StatusUnprocessableEntity, "auction schedule is malformed"
	case errors.Is(err, marketerrors.ErrSnapshotUnavailable):
		return http.StatusServiceUnavailable, "dashboard snapshot not available"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream service timed out"
	case errors.Is(err, marketerrors.ErrUpstream):
		return http.StatusBadGateway, "upstream service unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorDetails returns the extra response keys for err: per-field messages for
// validation failures and a retry hint for transient failures.
func ErrorDetails(err error) gin.H {
	details := gin.H{}

	var verr *auctions.ValidationError
	if errors.As(err, &verr) {
		details["fields"] = verr.Fields
	}

	// 404 responses from the backend also wrap ErrUpstream and are not worth retrying.
	if !errors.Is(err, marketerrors.ErrNotFound) &&
		(errors.Is(err, marketerrors.ErrUpstream) ||
			errors.Is(err, marketerrors.ErrSnapshotUnavailable) ||
			errors.Is(err, context.DeadlineExceeded)) {
		details["retryable"] = true
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// RespondError writes the error envelope for err and logs it at a level
// matching the status class.
func RespondError(c *gin.Context, handlerName, action string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONErrorDetails(c, status, fmt.Errorf("%s: %w", message, err), message, ErrorDetails(err))

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["status"] = status
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+action, ctx)
		return
	}
	utils.Warn(handlerName+": "+action, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
