package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taalentio/talent-api/internal/bootstrap"
	"github.com/taalentio/talent-api/internal/config"
	"github.com/taalentio/talent-api/internal/router"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/logger"
	"github.com/taalentio/talent-api/internal/shared/validator"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("Initialisation du serveur", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("Initialisation du serveur échouée", "error", err)
		os.Exit(1)
	}

	slog.Info("Serveur arrêté", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("chargement de la configuration échoué: %w", err)
	}

	slog.Info("Variables d'environnement chargées")

	// Field cipher must be installed before any encrypted column is read or written
	cipher, err := sharedCrypto.NewCipher(cfg.Crypto.FieldSecret)
	if err != nil {
		return fmt.Errorf("initialisation du chiffrement des champs échouée: %w", err)
	}
	sharedCrypto.Install(cipher)

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connexion à la base de données échouée: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Fermeture de la base de données échouée", "error", err)
		}
	}()

	// Setup server
	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	// Bootstrap server with common setup
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("enregistrement des validateurs échoué: %w", err)
	}

	// Setup application-specific routes
	router.Setup(ginEngine, cfg, db)

	slog.Info("Serveur configuré",
		"env", cfg.App.Env,
		"db_driver", cfg.Database.Driver,
	)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("erreur du serveur: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("Signal d'arrêt reçu", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("Arrêt du serveur...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("arrêt forcé du serveur: %w", err)
		}
		return nil
	}
}
