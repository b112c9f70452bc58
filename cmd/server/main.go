package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/v4ld3m4rjr/spravattus2/internal/auth"
	"github.com/v4ld3m4rjr/spravattus2/internal/config"
	"github.com/v4ld3m4rjr/spravattus2/internal/db"
	api "github.com/v4ld3m4rjr/spravattus2/internal/http"
	"github.com/v4ld3m4rjr/spravattus2/internal/logger"
	"github.com/v4ld3m4rjr/spravattus2/internal/repo"
	"github.com/v4ld3m4rjr/spravattus2/internal/service"
	"github.com/v4ld3m4rjr/spravattus2/internal/sheets"
)

func main() {
	cfg := config.Load()

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logg.Fatalw("failed to connect db", "error", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		logg.Fatalw("failed to run migrations", "error", err)
	}

	authManager := auth.NewManager(cfg.JWTSecret, 24*time.Hour)
	repository := repo.New(pool)
	provider := sheets.NewClient(cfg.SheetsAPIURL, cfg.SheetsToken)

	handler := &api.API{
		Accounts:  service.NewAccountService(repository, authManager),
		Profiles:  service.NewProfileService(repository),
		Responses: service.NewResponseService(repository),
		Dashboard: service.NewDashboardService(repository),
		Sheets:    service.NewSheetService(repository, provider),
		Export:    service.NewExportService(repository),
		Auth:      authManager,
		Origins:   strings.Split(cfg.CORSOrigin, ","),
		Log:       logg,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logg.Infow("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatalw("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logg.Errorw("server shutdown error", "error", err)
	}
}
