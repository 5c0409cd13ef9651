package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("logfile", "", "Write logs to this file")
	flagWorkers = flag.Int("workers", 0, "Concurrent hazard carve workers")
	flagSeed    = flag.Int64("seed", 0, "Bunker floor noise seed")
	flagTimeout = flag.Duration("timeout", 0, "Roll simulation time bound")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWorkers > 0 {
		cfg.Carve.Workers = *flagWorkers
	}
	if *flagSeed != 0 {
		cfg.Carve.NoiseSeed = *flagSeed
	}
	if *flagTimeout > 0 {
		cfg.Physics.Timeout = *flagTimeout
	}
}
