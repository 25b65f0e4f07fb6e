package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordfinder",
		Short:         "Word-search puzzles generated from the news",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env file is fine; the environment may already be set.
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Build one puzzle and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout())
		},
	})
	return root
}

// setup loads the configuration and builds the logger and the pipeline.
func setup(ctx context.Context) (Config, *zap.Logger, *Pipeline, error) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return cfg, nil, nil, err
	}

	completer, err := cfg.NewCompleter(ctx)
	if err != nil {
		logger.Sync()
		return cfg, nil, nil, err
	}
	logger.Info("completion client ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))

	feed := NewRSSFetcher(cfg.FeedURL, nil, logger)
	return cfg, logger, NewPipeline(feed, completer, logger), nil
}

func runServe(ctx context.Context) error {
	cfg, logger, pipeline, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewServer(pipeline, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", "http://localhost:"+cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runGenerate(ctx context.Context, out io.Writer) error {
	_, logger, pipeline, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	puzzle, err := pipeline.Run(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", err, errors.Unwrap(err))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Reply *Puzzle `json:"reply"`
	}{puzzle})
}
