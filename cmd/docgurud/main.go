package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/svkul/docguru-back/config"
	"github.com/svkul/docguru-back/document"
	"github.com/svkul/docguru-back/llm"
	docgurulogger "github.com/svkul/docguru-back/logger"
	"github.com/svkul/docguru-back/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command-line flags
	var (
		addr       = flag.String("addr", "", "Listen address (overrides config, e.g. :3000)")
		configPath = flag.String("config", "", "Path to config file. If not set, uses the default location")
		logFile    = flag.String("logfile", "", "Path to log file. If not set, logs to stdout/stderr")
		pretty     = flag.Bool("pretty", false, "Use pretty console output (only valid when logfile is not set)")
	)
	flag.Parse()

	// Validate that --logfile and --pretty are mutually exclusive
	if *logFile != "" && *pretty {
		return fmt.Errorf("--logfile and --pretty are mutually exclusive")
	}

	// Initialize logger with options
	logger, err := docgurulogger.InitWithOptions(*logFile, *pretty)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Load configuration
	path := *configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.LoadServerConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger.Info().
		Str("addr", cfg.Server.Addr).
		Msg("docgurud starting")

	ctx := context.Background()

	// Construct the three provider adapters and register them
	registry := llm.NewRegistry()

	openaiClient, err := config.NewOpenAIClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	claudeClient, err := config.NewAnthropicClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create Claude client: %w", err)
	}
	geminiClient, err := config.NewGeminiClient(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	for _, p := range []llm.Provider{openaiClient, claudeClient, geminiClient} {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("failed to register provider: %w", err)
		}
	}

	docs := document.NewService(registry, logger)

	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	}, docs)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
