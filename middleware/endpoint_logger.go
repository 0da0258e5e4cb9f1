package middleware

import (
	"fmt"
	"time"

	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger records each HTTP request as an ENDPOINT_CALL access
// event. Persistence depends on util.SetAccessLoggerDB having been called.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		staffID, _ := GetStaffID(c)
		details := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"raw_path":    c.Request.URL.Path,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"query":       c.Request.URL.RawQuery,
		}

		util.LogAccessEvent(util.AccessEvent{
			EventType: util.EventEndpointCall,
			StaffID:   staffID,
			MRN:       c.Param("mrn"),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			Details:   details,
		})
	}
}
