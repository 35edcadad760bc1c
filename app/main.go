package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdolezal/newsdesk/app/api"
	"github.com/mdolezal/newsdesk/app/cfg"
	"github.com/mdolezal/newsdesk/app/config"
	"github.com/mdolezal/newsdesk/app/feed"
	"github.com/mdolezal/newsdesk/app/news"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)

	slog.Info("Starting Newsdesk server", "version", appCfg.Version)

	loader := config.NewLoader(appCfg.CategoriesFile)
	categories, err := loader.Load()
	if err != nil {
		slog.Error("Failed to load category configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Category configuration loaded",
		"categories", len(categories.Categories),
		"sources", categories.SourceCount(),
		"groups", len(categories.Groups))

	// Initialize core components
	httpClient := &http.Client{}
	parser := feed.NewParser()
	fetcher := feed.NewFetcher(httpClient, parser, appCfg.UserAgent,
		time.Duration(appCfg.FetchTimeout)*time.Second)
	aggregator := news.NewAggregator(fetcher, appCfg.WorkerCount)
	cache := news.NewCache(aggregator, time.Duration(appCfg.CacheTTL)*time.Second)
	service := news.NewService(categories, cache)

	// Initialize HTTP server
	handler := api.NewHandler(service, categories, cache)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		slog.Info("API endpoints available",
			"feeds", "/api/feeds",
			"feed", "/api/feeds/<key>",
			"health", "/health")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Newsdesk server shutdown complete")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
