package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RJohnPaul/dms/internal/api"
	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/common/security"
	"github.com/RJohnPaul/dms/internal/domain/repository"
	"github.com/RJohnPaul/dms/internal/platform/config"
	"github.com/RJohnPaul/dms/internal/platform/database"
	"github.com/RJohnPaul/dms/internal/platform/kv"
)

func main() {
	// 1. Configuration and logging
	config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.AppConfig.LogLevel})))

	// 2. JWT
	security.InitJWT()

	// 3. Database
	database.Connect()
	defer database.Close()

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.InitSchema(initCtx, database.DB); err != nil {
		initCancel()
		slog.Error("Could not initialise schema", "error", err)
		os.Exit(1)
	}
	initCancel()

	// 4. Redis (token revocation)
	kv.ConnectRedis()
	defer kv.CloseRedis()

	// 5. User directory
	directory, err := session.LoadDirectory(config.AppConfig.DirectoryFile)
	if err != nil {
		slog.Error("Could not load user directory", "error", err)
		os.Exit(1)
	}
	slog.Info("User directory loaded", "users", len(directory.Users))

	// 6. Repositories
	incidentRepo := repository.NewPgIncidentRepository(database.DB)
	campRepo := repository.NewPgCampRepository(database.DB)
	donorRepo := repository.NewPgDonorRepository(database.DB)
	requestRepo := repository.NewPgRequestRepository(database.DB)
	catalogRepo := repository.NewPgCatalogRepository(database.DB)
	statsRepo := repository.NewPgStatsRepository(database.DB)

	// 7. Services
	revocations := kv.NewRevocationStore(kv.RDB, config.AppConfig.RevokedTokenKeyPrefix)
	services := api.Services{
		Auth:      service.NewAuthService(session.NewAuthenticator(directory), revocations),
		Incident:  service.NewIncidentService(incidentRepo),
		Camp:      service.NewCampService(campRepo),
		Donor:     service.NewDonorService(donorRepo),
		Request:   service.NewRequestService(requestRepo),
		Resource:  service.NewResourceService(catalogRepo, requestRepo),
		Dashboard: service.NewDashboardService(statsRepo),
	}

	// 8. Router & HTTP server
	if !config.AppConfig.EnforcePermissions {
		slog.Warn("Permission enforcement is off; every API route is open")
	}
	router := api.NewRouter(services, config.AppConfig.EnforcePermissions)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting", "port", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Could not listen", "port", config.AppConfig.APIPort, "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down API server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		return
	}
	slog.Info("API server stopped")
}
