// glbnorm rescales binary glTF (.glb) models so each fits within a
// unit bounding box, centered on the origin. It processes every
// matching file in the input directory, skipping past per-file errors.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/toolittlecakes/ar-art-prod/internal/config"
	"github.com/toolittlecakes/ar-art-prod/internal/logger"
	"github.com/toolittlecakes/ar-art-prod/internal/normalize"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.WriteConfigRequested() {
		path := "glbnorm.yaml"
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	runner := normalize.New(normalize.Options{
		InputDir:  cfg.Paths.InputDir,
		OutputDir: cfg.OutputDir(),
		Extension: cfg.Files.Extension,
	}, normalize.GLBLoader{})

	summary, err := runner.Run()
	if err != nil {
		logger.Error("batch failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("batch complete",
		zap.Int("ok", summary.OK),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
}
