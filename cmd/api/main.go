package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/runway-service/internal/config"
	"github.com/Dan9191/runway-service/internal/handler"
	"github.com/Dan9191/runway-service/internal/metrics"
	"github.com/Dan9191/runway-service/internal/notify"
	"github.com/Dan9191/runway-service/internal/repository"
	"github.com/Dan9191/runway-service/internal/scheduler"
	"github.com/Dan9191/runway-service/internal/service"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	repo := repository.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize layers
	svc := service.NewService(repo, logger, cfg, m)
	h := handler.NewHandler(svc, logger)
	r := handler.NewRouter(h, cfg, logger, m, reg)

	// Runway alerts
	if cfg.AlertSchedule != "" {
		job := scheduler.NewAlertJob(svc, notify.NewSender(cfg, logger), logger, m)
		c, err := job.Start(cfg.AlertSchedule)
		if err != nil {
			logger.Fatalf("Failed to start alert scheduler: %v", err)
		}
		defer c.Stop()
		logger.Infof("Runway alerts scheduled: %s", cfg.AlertSchedule)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}
