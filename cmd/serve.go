package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/rfx/internal/repositories"
	"github.com/desertthunder/rfx/internal/server"
	"github.com/desertthunder/rfx/internal/shared"
	"github.com/rs/cors"
	"github.com/urfave/cli/v3"
)

// Serve runs the reference /rfps server until the context is canceled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.config
	if configPath := cmd.String("config"); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			loaded, err := shared.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			config = loaded
		}
	}

	host := config.Server.Host
	if cmd.IsSet("host") {
		host = cmd.String("host")
	}
	port := config.Server.Port
	if cmd.IsSet("port") {
		port = cmd.Int("port")
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger))
	if config.Server.RequestsPerSec > 0 {
		router.Use(server.Throttle(config.Server.RequestsPerSec))
	}
	router.Handler(server.NewRFPHandler(repositories.NewRFPRepository(db), r.logger))

	handler := cors.New(cors.Options{
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	addr := fmt.Sprintf("%s:%d", host, port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	r.logger.Info("serving /rfps", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
