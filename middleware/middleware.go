package middleware

import (
	"time"

	"github.com/ariebrainware/ward-census/events"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	dbKey        = "db"
	publisherKey = "publisher"
)

// CORSMiddleware allows the configured origins, or any origin when none
// are configured.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// DatabaseMiddleware makes db available to handlers through GetDB.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, db)
		c.Next()
	}
}

// GetDB returns the request's DB, or nil when DatabaseMiddleware is not installed.
func GetDB(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

func PublisherMiddleware(p events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(publisherKey, p)
		c.Next()
	}
}

// GetPublisher returns the request's event publisher, falling back to a
// NopPublisher.
func GetPublisher(c *gin.Context) events.Publisher {
	if v, ok := c.Get(publisherKey); ok {
		if p, ok := v.(events.Publisher); ok && p != nil {
			return p
		}
	}
	return events.NopPublisher{}
}
