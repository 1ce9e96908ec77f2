// Package config handles normalizer configuration loading and management.
package config

// Config holds all normalizer settings.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Files   FilesConfig   `yaml:"files"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig holds the input and output directories.
type PathsConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"` // empty means in-place (same as input)
}

// FilesConfig holds file selection settings.
type FilesConfig struct {
	Extension string `yaml:"extension"` // recognized model file suffix
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:  "./models",
			OutputDir: "",
		},
		Files: FilesConfig{
			Extension: ".glb",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// OutputDir returns the effective output directory: the configured one,
// or the input directory when output is unset (in-place normalization).
func (c *Config) OutputDir() string {
	if c.Paths.OutputDir != "" {
		return c.Paths.OutputDir
	}
	return c.Paths.InputDir
}
