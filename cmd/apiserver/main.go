// API server entry point for MacBench.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: environment only)")
	httpPort := flag.Int("port", 0, "HTTP server port (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("macbench-apiserver %s (commit: %s, built: %s)\n", version, commit, buildDate)
		return
	}

	if err := run(*configPath, *httpPort); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, portOverride int) error {
	loadDotEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if portOverride > 0 {
		cfg.Server.Port = portOverride
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	logger = logger.Named("macbench")
	logger.Info("starting MacBench API server",
		logging.String("version", version),
		logging.String("environment", cfg.Environment),
		logging.Int("port", cfg.Server.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	if configPath != "" {
		watchLogLevel(configPath, logger)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	if err := app.server.Stop(context.Background()); err != nil {
		logger.Error("HTTP server shutdown error", logging.Err(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// loadDotEnv reads .env outside production.  A missing file is not an
// error.
func loadDotEnv() {
	env := os.Getenv("MACBENCH_ENVIRONMENT")
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	if strings.EqualFold(env, "production") {
		return
	}
	_ = godotenv.Load()
}

// watchLogLevel applies log level changes from the config file at runtime.
// Every other setting requires a restart.
func watchLogLevel(configPath string, logger logging.Logger) {
	setter, ok := logger.(logging.LevelSetter)
	if !ok {
		return
	}
	config.Watch(configPath, func(cfg *config.Config) {
		setter.SetLevel(cfg.Log.Level)
		logger.Info("log level reloaded", logging.String("level", cfg.Log.Level))
	}, func(err error) {
		logger.Warn("config reload rejected", logging.Err(err))
	})
}

//Personal.AI order the ending
