package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"content-assessor/api/internal/assess"
	"content-assessor/api/internal/assess/gemini"
	"content-assessor/api/internal/assess/gpt"
	"content-assessor/api/internal/config"
	"content-assessor/api/internal/handle"
	"content-assessor/api/internal/httpserver"
	"content-assessor/api/internal/metrics"
	"content-assessor/api/internal/tracing"
)

var (
	flagPort   string
	flagEngine string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP assessment service",
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVar(&flagPort, "port", "", "listen port (overrides PORT)")
		c.Flags().StringVar(&flagEngine, "engine", "", "assessment engine: gpt or gemini (overrides ASSESSOR_ENGINE)")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}
	logger := cfg.NewLogger()

	engines := &assess.Engines{
		OpenAI: gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL),
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	engine, err := engines.GetEngine(cfg.Engine)
	if err != nil {
		return fmt.Errorf("select engine: %w", err)
	}
	if cfg.APIKeyFor(engine.Name()) == "" {
		logger.Warn("no API key configured; assessments will fail", "engine", engine.Name())
	}

	tp, err := tracing.Install(cmd.Context(), cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := handle.New(engine, logger, metrics.New(reg))
	srv := httpserver.New(cfg.Addr(), httpserver.NewRouter(logger, reg, h))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("content-assessor listening", "addr", srv.Addr, "engine", engine.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}
