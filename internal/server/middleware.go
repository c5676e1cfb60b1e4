package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID reuses an incoming X-Request-ID or assigns a new UUID, and echoes
// it on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func requestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// Logger logs every request through zap.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t0 := time.Now()
		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(t0)),
			zap.String("request_id", requestID(ctx)),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}
		if ctx.Writer.Status() >= 500 {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}
