package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/meu-painel/backend/internal/config"
	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/router"
	"github.com/meu-painel/backend/internal/snapshot"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the HTTP API.

The database and the snapshot documents are kept in the data directory. When
the database is empty, all profiles are restored from the snapshots.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), o.config)
		},
	}

	cmd.Flags().String("listen", "", "address to listen on (default \":8080\")")
	_ = o.viper.BindPFlag(config.KeyListenAddr, cmd.Flags().Lookup("listen"))

	return cmd
}

// serve runs the API until ctx is done.
func serve(ctx context.Context, cfg config.Config) error {
	url, err := cfg.URL()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := models.Connect(filepath.Join(cfg.DataDir, "gorm.db")); err != nil {
		return err
	}
	defer closeDatabase()

	store, err := snapshot.New(filepath.Join(cfg.DataDir, "snapshots"))
	if err != nil {
		return err
	}
	v1.Snapshots = store

	if err := models.Bootstrap(models.DB, store.LoadAll()); err != nil {
		return err
	}

	r, teardown, err := router.Config(url, router.Settings{
		AllowOrigins: cfg.CORSAllowOrigins,
		EnablePprof:  cfg.EnablePprof,
	})
	if err != nil {
		return err
	}
	defer teardown()
	router.AttachRoutes(r.Group(url.Path))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", srv.Addr).Str("url", url.String()).Str("version", router.Version).Msg("Serving API")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func closeDatabase() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		log.Error().Err(err).Msg("Database")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Database")
	}
}
