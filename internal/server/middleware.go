package server

import (
	"fmt"
	"time"

	"spicegate/internal/marketerrors"
	"spicegate/internal/session"
	"spicegate/internal/telemetry"
	"spicegate/services/marketplace/helpers"
	"spicegate/utils"

	"github.com/gin-gonic/gin"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestLoggerMiddleware tags each request with an id and logs it with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(HeaderRequestID)
	if !utils.IsID(requestID) {
		requestID = utils.GenerateID()
	}
	c.Set("request_id", requestID)
	c.Header(HeaderRequestID, requestID)

	c.Next() // process request

	utils.Info("HTTP Request", telemetry.TraceFields(c.Request.Context(), map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}))
}

// SessionMiddleware restores the caller's session from the request headers and
// stores it in the request context for the backend client.
func SessionMiddleware(c *gin.Context) {
	s, err := session.FromRequest(c.Request)
	if err != nil {
		helpers.RespondError(c, "SessionMiddleware", "rejected request", err, map[string]any{"path": c.Request.URL.Path})
		return
	}
	c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), s))
	c.Next()
}

// RequireRole lets the request through only for the given user types.
// It must run after SessionMiddleware.
func RequireRole(types ...session.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.FromContext(c.Request.Context())
		if !ok {
			helpers.RespondError(c, "RequireRole", "rejected request",
				fmt.Errorf("server: %w - no session", marketerrors.ErrUnauthorized), nil)
			return
		}
		if !s.Is(types...) {
			helpers.RespondError(c, "RequireRole", "rejected request",
				fmt.Errorf("server: %w - %s cannot access %s", marketerrors.ErrForbidden, s.UserType, c.FullPath()), nil)
			return
		}
		c.Next()
	}
}
