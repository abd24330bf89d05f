package middleware

import (
	"time"

	"github.com/jvill171/express-biztime/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware persists one RequestLog row per handled API request.
// The row is written after the handler chain finishes so the final
// status and latency are known. A failed write never fails the request.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := models.RequestLog{
			RequestID: c.GetString(RequestIDKey),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			LatencyMS: time.Since(start).Milliseconds(),
		}

		_ = db.Create(&entry).Error
	}
}
