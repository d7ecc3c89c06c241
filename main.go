package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"guitar-sounds/config"
	"guitar-sounds/downloader"
)

func main() {
	// Load and validate configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	logger, err := newLogger(cfg.ZapLevel())
	if err != nil {
		log.Fatalf("failed to create zap logger: %v", err)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	opts := []downloader.Option{
		downloader.WithLogger(logger),
		downloader.WithOutput(os.Stdout),
	}
	if cfg.ShowProgress {
		opts = append(opts, downloader.WithProgress(os.Stderr))
	}

	if _, err := downloader.NewSoundFetcher(opts...).Run(context.Background()); err != nil {
		logger.Fatal("sound fetch aborted", zap.Error(err))
	}
}

// newLogger builds a development-style console logger on stderr so that it
// never interleaves with the download lines on stdout.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}
