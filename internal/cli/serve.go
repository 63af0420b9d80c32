package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/httpapi"
	"task-tracker/internal/observability/jsonlog"
	"task-tracker/internal/store/memorystore"
	"task-tracker/internal/task"
)

type serveOptions struct {
	ConfigPath string
	Addr       string
}

func NewServeCommand(root *RootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr = opts.Addr
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return Run(ctx, cfg, root.logger(cmd))
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// Run listens on cfg.HTTP.Addr and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *jsonlog.Logger) error {
	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.HTTP.Addr, err)
	}
	return Serve(ctx, ln, cfg, logger)
}

// Serve builds the store, service and handler, seeds the configured tasks
// and serves on ln. It shuts down gracefully when ctx is cancelled.
func Serve(ctx context.Context, ln net.Listener, cfg config.Config, logger *jsonlog.Logger) error {
	svc := task.NewService(memorystore.NewTaskStore())

	seed := make([]task.SeedTask, 0, len(cfg.Seed))
	for _, s := range cfg.Seed {
		seed = append(seed, task.SeedTask{Title: s.Title, Completed: s.Completed})
	}
	seeded, err := svc.Seed(seed)
	if err != nil {
		_ = ln.Close()
		return err
	}
	if len(seeded) > 0 {
		logger.Info("tasks_seeded", jsonlog.Fields{"count": len(seeded)})
	}

	srv := &http.Server{
		Handler: httpapi.NewServer(svc, httpapi.Options{
			Logger:         logger,
			RequestTimeout: cfg.HTTP.RequestTimeout,
		}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", jsonlog.Fields{"addr": ln.Addr().String()})
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting_down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", jsonlog.Fields{"error": err})
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	logger.Info("bye", nil)
	return nil
}
