package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/lumenworks/backoffice/internal/infrastructure/config"
	"github.com/lumenworks/backoffice/internal/infrastructure/database"
	"github.com/lumenworks/backoffice/internal/infrastructure/migration"
	"github.com/lumenworks/backoffice/internal/interfaces/cli"
	httpRouter "github.com/lumenworks/backoffice/internal/interfaces/http"
	"github.com/lumenworks/backoffice/internal/shared/constants"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the back office HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := cli.Bootstrap(env, configPath, true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, err := httpRouter.NewRouter(ctx, cfg, database.Get(), log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes(cfg)

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.GetEngine(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if config.GinModeForEnv(env) == "release" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := migration.NewManager(env).Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	if env == constants.EnvDevelopment {
		return nil
	}

	version, err := migration.NewGooseStrategy().GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}
