package apierror

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentType is the RFC 9457 media type
const ContentType = "application/problem+json"

// RequestIDKey is the gin context key the request logger stores the ID under
const RequestIDKey = "request_id"

// Write sends p and aborts the handler chain. Retry-After mirrors p.RetryAfter.
func Write(c *gin.Context, p *Problem) {
	if p.Instance == "" && c.Request != nil {
		p.Instance = c.Request.URL.Path
	}
	if p.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*p.RetryAfter))
	}
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(p.Status, p)
}

// RequestID returns the ID assigned by the logging middleware, falling back
// to the inbound X-Request-ID header
func RequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}
