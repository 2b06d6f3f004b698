package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"jokeapi/src/infra/logger"
)

// maxLoggedBody caps how much of each body is copied into the access log.
const maxLoggedBody = 2048

// Logging emits one access log record per request. The level follows the
// status: 5xx error, 4xx warn, everything else info.
func Logging(log *slog.Logger) gin.HandlerFunc {
	log = logger.WithComponent(log, "http")

	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		// Capture the head of the request body, then replay it ahead of
		// the unread remainder so handlers still see the whole body
		var reqBody []byte
		if body := c.Request.Body; body != nil {
			reqBody, _ = io.ReadAll(io.LimitReader(body, maxLoggedBody+1))
			c.Request.Body = replayBody{
				Reader: io.MultiReader(bytes.NewReader(reqBody), body),
				Closer: body,
			}
		}

		// Capture response body
		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		// Process request
		c.Next()

		// Build log attributes
		status := c.Writer.Status()
		attrs := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"request", truncate(reqBody),
			"response", truncate(rec.body.Bytes()),
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			attrs = append(attrs, "errors", errs.String())
		}

		// Log at a level matching the status
		switch {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}

// truncate cuts b to maxLoggedBody bytes and marks the cut.
func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "..."
	}
	return string(b)
}

// replayBody reads the captured head followed by the rest of the body and
// closes the original body.
type replayBody struct {
	io.Reader
	io.Closer
}

// responseCapture keeps the first maxLoggedBody+1 bytes of the response
// while delegating every write to the wrapped writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.keep(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.keep([]byte(s))
	return r.ResponseWriter.WriteString(s)
}

func (r *responseCapture) keep(b []byte) {
	if room := maxLoggedBody + 1 - r.body.Len(); room > 0 {
		r.body.Write(b[:min(room, len(b))])
	}
}
