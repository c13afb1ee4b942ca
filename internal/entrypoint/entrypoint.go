package entrypoint

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edtailor/backend/internal/config"
	"github.com/edtailor/backend/internal/database"
	"github.com/edtailor/backend/internal/database/categories"
	"github.com/edtailor/backend/internal/database/fabrics"
	"github.com/edtailor/backend/internal/database/garments"
	"github.com/edtailor/backend/internal/database/lessons"
	"github.com/edtailor/backend/internal/database/tags"
	"github.com/edtailor/backend/internal/database/terms"
	"github.com/edtailor/backend/internal/database/topics"
	http_controllers "github.com/edtailor/backend/internal/http"
	"github.com/edtailor/backend/internal/logger"
)

// Run wires configuration, storage, repositories and controllers together
// and serves HTTP until interrupted.
func Run(cfg *config.Config, version string) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer log.Sync()

	log.Info("starting EdTailor backend", "version", version)

	db, err := database.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	lessonsRepo := lessons.NewRepository(db.DB)
	tagsRepo := tags.NewRepository(db.DB)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Categories: http_controllers.NewCategoriesController(categories.NewRepository(db.DB)),
		Topics:     http_controllers.NewTopicsController(topics.NewRepository(db.DB)),
		Lessons:    http_controllers.NewLessonsController(lessonsRepo, tagsRepo),
		Fabrics:    http_controllers.NewFabricsController(fabrics.NewRepository(db.DB)),
		Garments:   http_controllers.NewGarmentsController(garments.NewRepository(db.DB)),
		Terms:      http_controllers.NewTermsController(terms.NewRepository(db.DB)),
		Health:     http_controllers.NewHealthController(db, version),
	})

	Serve(router, cfg, log)
}

// Serve runs the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, log *logger.Logger) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info("starting server", "host", cfg.HTTP.Host, "port", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", "error", err)
	}

	log.Info("server exiting")
}
