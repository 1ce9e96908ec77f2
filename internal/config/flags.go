package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagIn          = flag.String("in", "", "Input directory containing model files")
	flagOut         = flag.String("out", "", "Output directory (defaults to input directory)")
	flagExt         = flag.String("ext", "", "Model file suffix to process")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config to glbnorm.yaml and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether --write-config was given.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagIn != "" {
		cfg.Paths.InputDir = *flagIn
	}
	if *flagOut != "" {
		cfg.Paths.OutputDir = *flagOut
	}
	if *flagExt != "" {
		cfg.Files.Extension = *flagExt
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
}
