// Package config handles server configuration loading and management.
package config

// Config holds all server settings.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds websocket listener and rendering settings.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	RowWorkers int    `yaml:"row_workers"` // 0 = runtime.NumCPU()
}

// TexturesConfig holds the block-face texture source.
type TexturesConfig struct {
	// Dir is a directory of ten BMP files overriding the compiled-in
	// defaults. Empty means use the embedded set.
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MetricsConfig holds the Prometheus exporter settings.
type MetricsConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: "0.0.0.0:8080",
			RowWorkers: 0,
		},
		Textures: TexturesConfig{
			Dir: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Metrics: MetricsConfig{
			ListenAddr: "0.0.0.0:9090",
		},
	}
}
