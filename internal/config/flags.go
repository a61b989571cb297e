package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagListenAddr  = flag.String("listen", "", "Websocket listen address")
	flagMetrics     = flag.String("metrics-listen", "", "Prometheus metrics listen address")
	flagWorkers     = flag.Int("row-workers", 0, "Row workers per frame (0 = NumCPU)")
	flagTexDir      = flag.String("textures-dir", "", "Directory of override block-face BMPs")
	flagWriteConfig = flag.String("write-config", "", "Write the fully-resolved config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config path, or "" if the flag
// wasn't given. cmd/server uses this to dump the resolved config and exit
// instead of starting the server.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagListenAddr != "" {
		cfg.Server.ListenAddr = *flagListenAddr
	}
	if *flagMetrics != "" {
		cfg.Metrics.ListenAddr = *flagMetrics
	}
	if *flagWorkers > 0 {
		cfg.Server.RowWorkers = *flagWorkers
	}
	if *flagTexDir != "" {
		cfg.Textures.Dir = *flagTexDir
	}
}
