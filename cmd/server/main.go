package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xero1ghost/arcania-backend/internal/api"
	"github.com/xero1ghost/arcania-backend/internal/config"
	"github.com/xero1ghost/arcania-backend/internal/repositories"
)

// @title Arcania Vault API
// @version 1.0
// @description Zero-knowledge password-vault backend. All key derivation and encryption happen in the client; the server stores opaque salts, hashes, and ciphertext.
// @BasePath /api
func main() {
	cfg := config.Load()

	db, err := repositories.Connect(cfg.DBURL)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewRouter(cfg, db),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.ListenAndServe()
	}()

	log.Printf("Starting Arcania vault server on port: %s", cfg.Port)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
		}
	case sig := <-shutdown:
		log.Printf("Shutdown signal received: %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			_ = server.Close()
		}
	}
}
