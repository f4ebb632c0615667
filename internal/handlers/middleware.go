package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogMiddleware logs one line per request. Server errors are logged
// at error level, everything else at debug.
func (h *Handler) requestLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	status := c.Writer.Status()
	kv := []interface{}{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", status,
		"latency", time.Since(start),
	}
	if len(c.Errors) > 0 {
		kv = append(kv, "errors", c.Errors.String())
	}
	if status >= 500 {
		h.log.Errorw("http_request", kv...)
		return
	}
	h.log.Debugw("http_request", kv...)
}
