package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"orioncatalog/internal/api"
	"orioncatalog/internal/config"
	"orioncatalog/internal/model"
	"orioncatalog/internal/storage"
)

var startedAt = time.Now()

func main() {
	// Optional .env for local development; real deployments use the
	// process environment.
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("failed to parse config")
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	if err := model.SeedAdminAccount(context.Background(), repo, cfg); err != nil {
		logrus.WithError(err).Warn("failed to seed admin account")
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	handler, err := api.NewHTTPHandler(cfg, repo, store)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(api.RequestID())
	r.Use(api.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		api.RespondOK(c, "service is healthy", gin.H{
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		})
	})

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", handler.Register)
	authGroup.POST("/login", handler.Login)
	authGroup.GET("/profile", handler.AuthMiddleware(), handler.Profile)

	users := v1.Group("/users")
	users.GET("/role/:role", handler.ListUsersByRole)
	users.GET("/:id", handler.GetUser)
	usersAdmin := users.Group("")
	usersAdmin.Use(handler.AuthMiddleware(), handler.RequireElevated())
	usersAdmin.GET("", handler.ListUsers)
	usersAdmin.PUT("/:id", handler.UpdateUser)
	usersAdmin.DELETE("/:id", handler.DeleteUser)

	devices := v1.Group("/devices")
	devices.GET("", handler.ListDevices)
	devices.GET("/active", handler.ListActiveDevices)
	devices.GET("/search", handler.SearchDevices)
	devices.GET("/codename/:codename", handler.GetDeviceByCodename)
	devices.GET("/:id", handler.GetDevice)
	devices.POST("", handler.AuthMiddleware(), handler.RequireElevated(), handler.CreateDevice)
	devices.PUT("/:id", handler.AuthMiddleware(), handler.UpdateDevice)
	devices.DELETE("/:id", handler.AuthMiddleware(), handler.DeleteDevice)

	sources := v1.Group("/sources")
	sources.GET("", handler.ListSourceReleases)
	sources.GET("/latest", handler.LatestSourceRelease)
	sources.GET("/codename/:codename", handler.ListSourceReleasesByCodename)
	sources.GET("/version/:version", handler.GetSourceReleaseByVersion)
	sources.GET("/:id", handler.GetSourceRelease)
	sourcesAdmin := sources.Group("")
	sourcesAdmin.Use(handler.AuthMiddleware(), handler.RequireElevated())
	sourcesAdmin.POST("", handler.CreateSourceRelease)
	sourcesAdmin.PUT("/:id", handler.UpdateSourceRelease)
	sourcesAdmin.DELETE("/:id", handler.DeleteSourceRelease)

	builds := v1.Group("/builds")
	builds.GET("", handler.ListBuildReleases)
	builds.GET("/latest", handler.ListLatestBuildReleases)
	builds.GET("/version/:version", handler.ListBuildReleasesByVersion)
	builds.GET("/device/:codename", handler.ListBuildReleasesByDevice)
	builds.GET("/my", handler.AuthMiddleware(), handler.ListMyBuildReleases)
	builds.GET("/:id", handler.GetBuildRelease)
	builds.POST("", handler.AuthMiddleware(), handler.CreateBuildRelease)
	builds.PUT("/:id", handler.AuthMiddleware(), handler.UpdateBuildRelease)
	builds.DELETE("/:id", handler.AuthMiddleware(), handler.DeleteBuildRelease)

	announcements := v1.Group("/announcements")
	announcements.GET("", handler.ListAnnouncements)
	announcements.GET("/latest", handler.ListLatestAnnouncements)
	announcements.GET("/device/:codename", handler.ListAnnouncementsByDevice)
	announcements.GET("/my", handler.AuthMiddleware(), handler.ListMyAnnouncements)
	announcements.GET("/:id", handler.GetAnnouncement)
	announcements.POST("", handler.AuthMiddleware(), handler.CreateAnnouncement)
	announcements.PUT("/:id", handler.AuthMiddleware(), handler.UpdateAnnouncement)
	announcements.DELETE("/:id", handler.AuthMiddleware(), handler.DeleteAnnouncement)

	uiSamples := v1.Group("/ui-samples")
	uiSamples.GET("", handler.ListUISamples)
	uiSamples.GET("/:id", handler.GetUISample)
	uiSamplesAdmin := uiSamples.Group("")
	uiSamplesAdmin.Use(handler.AuthMiddleware(), handler.RequireElevated())
	uiSamplesAdmin.POST("", handler.CreateUISample)
	uiSamplesAdmin.PUT("/:id", handler.UpdateUISample)
	uiSamplesAdmin.DELETE("/:id", handler.DeleteUISample)

	v1.POST("/uploads", handler.AuthMiddleware(), handler.UploadImage)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/files"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logrus.WithField("host", serverHost).Info("server starting")
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Error("server failed")
	}
}
