package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/presentation/tui"
	"github.com/aretw0/sboard/internal/watch"
	httpAdapter "github.com/aretw0/sboard/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP API",
	Long: `Serves the loaded project as a JSON API described by /openapi.yaml, with Prometheus metrics on /metrics.
With --watch the project file is reloaded whenever it changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTP.Addr = addr
		}
		watching, _ := cmd.Flags().GetBool("watch")

		p, err := openProject(cmd)
		if err != nil {
			return err
		}

		metrics := httpAdapter.NewMetrics()
		handler := &reloader{build: func(p *sboard.Project) http.Handler {
			return httpAdapter.NewHandler(p, httpAdapter.WithLogger(logger), httpAdapter.WithMetrics(metrics))
		}}
		handler.swap(p)

		watchCtx, stopWatch := context.WithCancel(context.Background())
		defer stopWatch()
		if watching {
			if err := handler.watch(watchCtx, cmd); err != nil {
				return err
			}
		}

		srv := &http.Server{
			Addr:        cfg.HTTP.Addr,
			Handler:     handler,
			ReadTimeout: cfg.HTTP.ReadTimeout,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner(cmd.ErrOrStderr())
			logger.Info("Starting sboard server", append(logAttrs(p), "addr", srv.Addr)...)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", cfg.HTTP.ShutdownTimeout, "error", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("sboard server stopped gracefully")
			return nil
		}
	},
}

// reloader serves the most recently loaded project.
type reloader struct {
	build   func(*sboard.Project) http.Handler
	current atomic.Pointer[http.Handler]
}

func (r *reloader) swap(p *sboard.Project) {
	h := r.build(p)
	r.current.Store(&h)
}

func (r *reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	(*r.current.Load()).ServeHTTP(w, req)
}

// watch reloads the --file project on every change. A document that fails to
// load is logged and the previous project keeps being served.
func (r *reloader) watch(ctx context.Context, cmd *cobra.Command) error {
	if doc, _ := cmd.Flags().GetString("doc"); doc != "" {
		return fmt.Errorf("--watch only works with --file")
	}
	changes, err := watch.File(ctx, cfg.File, watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	go func() {
		for path := range changes {
			p, err := openProject(cmd)
			if err != nil {
				logger.Error("Reload failed, keeping previous project", "path", path, "error", err)
				continue
			}
			r.swap(p)
			logger.Info("Project reloaded", logAttrs(p)...)
		}
	}()
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
	serveCmd.Flags().Bool("watch", false, "Reload the project file when it changes")
}
