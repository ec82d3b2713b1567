package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"personal-scheduling-assistant/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}

// RequestLog writes one line per request with method, path, status and
// latency. Health probes are skipped to keep the log readable.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if path == "/health" || path == "/ready" || path == "/live" {
			return
		}
		m.l.Infof(c.Request.Context(), "http: %s %s -> %d (%s)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
