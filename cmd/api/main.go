package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "fieldops/docs"
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/adapter/http/routes"
	"fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/infrastructure/config"
	"fieldops/internal/infrastructure/database"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Operations API
// @version         1.0
// @description     Job completion, archive and invoice conversion for field-service jobs.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})))

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		return err
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		return err
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	if cfg.DynamoDBEndpoint != "" {
		if err := database.EnsureInvoicesTable(ctx, ddb); err != nil {
			return err
		}
	}

	completedJobRepo := repository.NewCompletedJobGormRepository(db)
	presetRepo := repository.NewPricingPresetGormRepository(db)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	uow := repository.NewArchiveGormUnitOfWork(db)

	completionUseCase := usecase.NewJobCompletionUseCase(uow, usecase.NewFollowUpEvaluator(cfg.MaintenanceTypes))
	completedJobUseCase := usecase.NewCompletedJobUseCase(completedJobRepo)
	invoiceUseCase := usecase.NewInvoiceConversionUseCase(completedJobRepo, presetRepo, invoiceRepo)

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(routes.Handlers{
		JobCompletion: handlers.NewJobCompletionHandler(completionUseCase),
		CompletedJobs: handlers.NewCompletedJobHandler(completedJobUseCase, invoiceUseCase),
	}, middleware.IdentityConfig{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func logLevel(raw string) slog.Level {
	switch raw {
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
