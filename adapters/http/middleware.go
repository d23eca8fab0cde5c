package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/i-shreyansh/portfolio/pkg/apperror"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

const (
	GinContextKeyRequestID = "requestID"
	HeaderRequestID        = "X-Request-ID"
)

// RequestLogger tags each request with an id and logs it once finished.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// ErrorMiddleware turns errors pushed with c.Error into a JSON response.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		requestID, _ := c.Get(GinContextKeyRequestID)
		if status >= 500 {
			log.Error("request failed", err, zap.Any("request_id", requestID), zap.String("path", c.Request.URL.Path))
		} else {
			log.Warn("request rejected", zap.Error(err), zap.Any("request_id", requestID), zap.String("path", c.Request.URL.Path))
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, apperror.ToJSON(err))
	}
}

func GetRequestIDFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeyRequestID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
