package config

import "os"

// Environment variable names recognized by the normalizer. A .env file
// in the working directory is honored when the binary imports
// godotenv/autoload; real environment variables take precedence.
const (
	EnvInputDir  = "GLBNORM_INPUT_DIR"
	EnvOutputDir = "GLBNORM_OUTPUT_DIR"
	EnvExtension = "GLBNORM_EXTENSION"
	EnvLogLevel  = "GLBNORM_LOG_LEVEL"
	EnvLogFile   = "GLBNORM_LOG_FILE"
)

// applyEnv applies environment variable overrides to the config.
func applyEnv(cfg *Config) {
	cfg.Paths.InputDir = getEnv(EnvInputDir, cfg.Paths.InputDir)
	cfg.Paths.OutputDir = getEnv(EnvOutputDir, cfg.Paths.OutputDir)
	cfg.Files.Extension = getEnv(EnvExtension, cfg.Files.Extension)
	cfg.Logging.Level = getEnv(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.File = getEnv(EnvLogFile, cfg.Logging.File)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
