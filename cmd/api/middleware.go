package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ua "github.com/mileusna/useragent"
)

const requestIDHeader = "X-Request-ID"

// requestID propagates an incoming X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDHeader),
			"client", clientKind(ua.Parse(c.Request.UserAgent())),
		)
	}
}

// clientKind classifies the caller, e.g.: web | mobile | tablet | desktop | bot
func clientKind(agent ua.UserAgent) string {
	switch {
	case agent.Bot:
		return "bot"
	case agent.Mobile:
		return "mobile"
	case agent.Tablet:
		return "tablet"
	case agent.Desktop:
		return "desktop"
	}
	return "web"
}
