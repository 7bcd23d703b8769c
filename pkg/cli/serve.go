package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bdm-lab/mediascope/pkg/cli/config"
	controller "github.com/bdm-lab/mediascope/pkg/controller/http"
	"github.com/bdm-lab/mediascope/pkg/repository"
	"github.com/bdm-lab/mediascope/pkg/usecase"
	"github.com/bdm-lab/mediascope/pkg/utils/apperr"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		workweekCfg config.Workweek
	)

	flags := joinFlags(
		serverCfg.Flags(),
		workweekCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Get logger from root command metadata
			logger := ctxlog.From(ctx)

			logger.Info("Starting mediascope server",
				slog.Any("server", serverCfg),
				slog.Any("workweek", workweekCfg),
			)

			work, err := workweekCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure workweek")
			}

			// State lives in process memory only and resets on restart
			repo := repository.NewMemory()
			defer repo.Close()

			incidentUC := usecase.NewIncident(repo)
			statsUC := usecase.NewStats(work)

			server := controller.NewServer(ctx, serverCfg.Addr, incidentUC, statsUC)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					apperr.Handle(ctx, err)
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
