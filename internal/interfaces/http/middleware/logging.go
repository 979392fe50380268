package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/shared/constants"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// CustomLogger logs one line per request. Query strings are omitted so
// access tokens never reach the log.
func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if userID := c.GetString(constants.ContextKeyUserID); userID != "" {
			args = append(args, "user_id", userID)
		}
		if tenantID := c.GetString(constants.ContextKeyTenantID); tenantID != "" {
			args = append(args, "tenant_id", tenantID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Error())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed successfully", args...)
		}
	}
}
