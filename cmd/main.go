/*
Package main is the entry point for the ZazaChat server.

It is responsible for loading configuration, initializing the global logging
system, selecting and opening the room store backend, wiring the chat and
translation services into the HTTP router, and gracefully handling operating
system interrupt signals (SIGINT, SIGTERM) for a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zazachat/internal/app/chat"
	"zazachat/internal/app/store"
	"zazachat/internal/app/translate"
	"zazachat/internal/configs"
	"zazachat/internal/handler"
	"zazachat/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the room store. A database DSN selects the Postgres backend,
	// otherwise rooms persist to a local JSON file.
	var roomStore chat.Store
	if cfg.DatabaseDSN != "" {
		pgStore, err := store.NewPostgresStore(cfg.DatabaseDSN)
		if err != nil {
			logx.Fatal(err, "Failed to open Postgres room store")
		}
		defer pgStore.Close()

		roomStore = pgStore
		logx.Info("Room store backend selected", "backend", "postgres")
	} else {
		roomStore = store.NewFileStore(cfg.StorePath)
		logx.Info("Room store backend selected", "backend", "file", "path", cfg.StorePath)
	}

	// Initialize the chat service over the store.
	chatService := chat.NewService(roomStore)

	// Initialize the translation service.
	translateClient := translate.NewClient(translate.ClientConfig{
		BaseURL: cfg.TranslateBaseURL,
		APIKey:  cfg.TranslateAPIKey,
		Model:   cfg.TranslateModel,
	})
	translateService := translate.NewService(translateClient)

	// Setup HTTP server and routes
	deps := &handler.AppDeps{
		Chat:       chatService,
		Translator: translateService,
		Config:     cfg,
	}
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("ZazaChat Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
