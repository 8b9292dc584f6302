package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review-sentiment-service/internal/adapters/primary/http/handlers"
	"review-sentiment-service/internal/adapters/primary/http/middleware"
	"review-sentiment-service/internal/adapters/secondary/artifact"
	"review-sentiment-service/internal/config"
	"review-sentiment-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Both artifacts must deserialize before any request can be served;
	// there is no partial-load or lazy-load path.
	store, err := artifact.Load(cfg.Model.VectorizerPath, cfg.Model.ModelPath)
	if err != nil {
		log.Fatalf("load model artifacts: %v", err)
	}
	log.WithFields(log.Fields{
		"model":      cfg.Model.ModelPath,
		"vectorizer": cfg.Model.VectorizerPath,
		"features":   store.Dimensions(),
	}).Info("model artifacts loaded")

	sentimentSvc := services.NewSentimentService(store.Vectorizer, store.Classifier)
	h := handlers.New(sentimentSvc)

	// Setup router
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())
	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	h.RegisterRoutes(router)

	api := router.Group("/api/v1/sentiment")
	h.RegisterAPIRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
