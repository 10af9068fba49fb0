package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/platform/config"
	"github.com/RJohnPaul/dms/internal/web"
)

func main() {
	// 1. Configuration and logging
	config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.AppConfig.LogLevel})))

	// 2. User directory
	directory, err := session.LoadDirectory(config.AppConfig.DirectoryFile)
	if err != nil {
		slog.Error("Could not load user directory", "error", err)
		os.Exit(1)
	}

	// 3. API client, or the simulator when no API is configured
	var api *client.Client
	if config.AppConfig.APIBaseURL == "" {
		slog.Warn("API_BASE_URL not set, serving simulated data", "delay", config.AppConfig.SimulatorDelay)
		api = client.New(client.SimulatorBaseURL, client.NewSimulator(config.AppConfig.SimulatorDelay))
	} else {
		slog.Info("Using relief API", "url", config.AppConfig.APIBaseURL)
		api = client.New(config.AppConfig.APIBaseURL, &http.Client{Timeout: 30 * time.Second})
	}

	// 4. Cookie store for the session slot and flash messages
	store := sessions.NewCookieStore(config.AppConfig.SessionKey)
	store.Options.HttpOnly = true
	store.Options.Secure = config.AppConfig.CookieSecure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"

	handler, err := web.NewHandler(web.Options{
		Client:        api,
		Authenticator: session.NewAuthenticator(directory),
		Store:         store,
		CSRFKey:       config.AppConfig.CSRFKey,
		CookieSecure:  config.AppConfig.CookieSecure,
	})
	if err != nil {
		slog.Error("Could not build dashboard", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + config.AppConfig.DashboardPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 5. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Dashboard starting", "port", config.AppConfig.DashboardPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Could not listen", "port", config.AppConfig.DashboardPort, "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down dashboard")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Dashboard shutdown failed", "error", err)
		return
	}
	slog.Info("Dashboard stopped")
}
