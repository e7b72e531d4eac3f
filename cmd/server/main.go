package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/upkeephq/upkeep/internal/auth"
	"github.com/upkeephq/upkeep/internal/clock"
	"github.com/upkeephq/upkeep/internal/config"
	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
	"github.com/upkeephq/upkeep/internal/sqlite"
	"github.com/upkeephq/upkeep/internal/transport"
)

func main() {
	// A missing .env is fine; explicit env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("UPKEEP_JWT_SECRET not set; using an insecure development secret")
		cfg.Auth.JWTSecret = "insecure-dev-secret"
	}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	assetRepo := sqlite.NewAssetRepository(db)
	scheduleRepo := sqlite.NewScheduleRepository(db)
	completionRepo := sqlite.NewCompletionRepository(db)
	changeLogRepo := sqlite.NewChangeLogRepository(db)
	workOrderRepo := sqlite.NewWorkOrderRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	clk := clock.System{}
	assetSvc := asset.NewService(assetRepo, clk, logger)
	scheduleSvc := schedule.NewService(scheduleRepo, completionRepo, changeLogRepo, assetRepo, clk, logger)
	workOrderSvc := workorder.NewService(workOrderRepo, clk, logger)
	authSvc := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := transport.NewServer(transport.Services{
		Assets:     assetSvc,
		Schedules:  scheduleSvc,
		WorkOrders: workOrderSvc,
		Users:      userRepo,
		Auth:       authSvc,
	}, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
