package middleware

import (
	"errors"
	"strings"

	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

const StaffIDKey = "staff_id"

var errStaffRequired = errors.New("staff identity required")

// StaffIdentity reads an optional bearer token and, when it verifies, puts
// the staff id in the context. A token that fails to verify is logged and
// the request continues anonymously.
func StaffIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		staffID, err := util.ParseStaffToken(raw)
		if err != nil {
			util.LogAccessEvent(util.AccessEvent{
				EventType: util.EventSuspiciousActivity,
				IP:        c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
				Message:   "Rejected staff token: " + err.Error(),
			})
			c.Next()
			return
		}
		c.Set(StaffIDKey, staffID)
		c.Next()
	}
}

// RequireStaff aborts with 401 unless StaffIdentity resolved a staff id.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetStaffID(c); !ok {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "A valid staff token is required",
				Err: errStaffRequired,
			})
			return
		}
		c.Next()
	}
}

func GetStaffID(c *gin.Context) (string, bool) {
	v, ok := c.Get(StaffIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
