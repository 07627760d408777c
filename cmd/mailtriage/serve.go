package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mailtriage/internal/handler"
	"mailtriage/internal/router"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the mailtriage HTTP server.

Routes:
  GET  /              service index
  GET  /health        liveness
  GET  /readyz        readiness (503 while the provider is rate limited)
  POST /classify-text JSON {"content": "..."}
  POST /upload        multipart "file" (TXT or PDF)
  POST /api/classify  JSON or form {"content": "...", "filename": "..."}
  GET  /swagger/      API documentation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}

		if cfg.Server.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		healthH := handler.NewHealthHandler(serviceName, version, a.breaker)
		classifyH := handler.NewClassifyHandler(a.pipeline, a.uploads, cfg.Input.MinContentLength)
		r := router.Setup(cfg, healthH, classifyH)

		srv := &http.Server{
			Addr:              cfg.Server.Port,
			Handler:           r,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      cfg.Server.WriteTimeout,
		}
		return runServer(cmd.Context(), srv)
	},
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
