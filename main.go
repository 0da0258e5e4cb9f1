package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/ward-census/config"
	"github.com/ariebrainware/ward-census/docs"
	"github.com/ariebrainware/ward-census/endpoint"
	"github.com/ariebrainware/ward-census/events"
	"github.com/ariebrainware/ward-census/middleware"
	"github.com/ariebrainware/ward-census/store"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           Ward Census API
// @version         1.0
// @description     Ward census, specialty rosters and patient note timelines.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Staff token. Format: "Bearer {token}"
func main() {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel)
	util.SetJWTSecret(os.Getenv("JWTSECRET"))

	db, err := config.ConnectDatabase()
	if err != nil {
		util.Log.WithError(err).Fatal("Error connecting to database")
	}
	if err := store.NewGormStore(db).AutoMigrate(); err != nil {
		util.Log.WithError(err).Fatal("Error migrating database")
	}
	util.SetAccessLoggerDB(db)

	if cfg.SeedFile != "" {
		seedDatabase(db, cfg.SeedFile)
	}

	if _, err := config.ConnectRedis(); err != nil {
		util.Log.WithError(err).Warn("Redis unavailable, rate limiting disabled")
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaNotesTopic)
	defer publisher.Close()

	gin.SetMode(cfg.GinMode)
	router := newRouter(cfg, db, publisher)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: router,
	}

	go func() {
		util.WithFields(map[string]interface{}{
			"port":   cfg.AppPort,
			"appenv": cfg.AppEnv,
		}).Infof("%s started", cfg.AppName)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			util.Log.WithError(err).Fatal("error starting server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	util.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		util.Log.WithError(err).Error("Server forced to shutdown")
	}
	util.Log.Info("Server stopped")
}

func newRouter(cfg *config.Config, db *gorm.DB, publisher events.Publisher) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.PublisherMiddleware(publisher))
	router.Use(middleware.StaffIdentity())
	router.Use(middleware.EndpointCallLogger())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/census", endpoint.GetCensus)
	router.GET("/specialties", endpoint.ListSpecialtyRosters)
	router.GET("/patient/:mrn", endpoint.GetPatientDetail)
	router.GET("/patient/:mrn/notes", endpoint.ListPatientNotes)

	writes := router.Group("/",
		middleware.RequireStaff(),
		middleware.RateLimiter(middleware.RateLimitConfig{Limit: cfg.RateLimit, Window: cfg.RateWindow}),
	)
	writes.POST("/patient", endpoint.AdmitPatient)
	writes.PATCH("/visit/:id/discharge", endpoint.DischargeVisit)
	writes.POST("/patient/:mrn/notes", endpoint.CreatePatientNote)
	writes.PATCH("/notes/:id", endpoint.UpdatePatientNote)

	docs.SwaggerInfo.Title = cfg.AppName
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func seedDatabase(db *gorm.DB, path string) {
	data, err := store.LoadSeedFile(path)
	if err != nil {
		util.Log.WithError(err).WithField("file", path).Error("Failed to load seed file")
		return
	}
	if err := store.ApplySeed(context.Background(), db, data); err != nil {
		util.Log.WithError(err).WithField("file", path).Error("Failed to apply seed file")
		return
	}
	util.Log.WithField("patients", len(data.Patients)).Info("Seed data applied")
}
