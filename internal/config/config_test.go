package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.ListenAddr != "0.0.0.0:8080" {
		t.Errorf("expected listen addr 0.0.0.0:8080, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Server.RowWorkers != 0 {
		t.Errorf("expected row workers 0 (NumCPU), got %d", cfg.Server.RowWorkers)
	}
	if cfg.Textures.Dir != "" {
		t.Errorf("expected empty textures dir, got %s", cfg.Textures.Dir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Metrics.ListenAddr != "0.0.0.0:9090" {
		t.Errorf("expected metrics listen addr 0.0.0.0:9090, got %s", cfg.Metrics.ListenAddr)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
server:
  listen_addr: "0.0.0.0:9001"
  row_workers: 4

textures:
  dir: "/opt/voxelmon/textures"

logging:
  level: "debug"
  log_file: "server.log"

metrics:
  listen_addr: "127.0.0.1:9100"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddr != "0.0.0.0:9001" {
		t.Errorf("expected listen addr 0.0.0.0:9001, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Server.RowWorkers != 4 {
		t.Errorf("expected row workers 4, got %d", cfg.Server.RowWorkers)
	}
	if cfg.Textures.Dir != "/opt/voxelmon/textures" {
		t.Errorf("expected textures dir override, got %s", cfg.Textures.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "server.log" {
		t.Errorf("expected log file 'server.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Metrics.ListenAddr != "127.0.0.1:9100" {
		t.Errorf("expected metrics listen addr override, got %s", cfg.Metrics.ListenAddr)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
server:
  row_workers: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  row_workers: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "listen flag",
			setup: func() {
				*flagListenAddr = "0.0.0.0:7000"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Server.ListenAddr != "0.0.0.0:7000" {
					t.Errorf("expected listen addr 0.0.0.0:7000, got %s", cfg.Server.ListenAddr)
				}
			},
			teardown: func() {
				*flagListenAddr = ""
			},
		},
		{
			name: "metrics-listen flag",
			setup: func() {
				*flagMetrics = "0.0.0.0:9200"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Metrics.ListenAddr != "0.0.0.0:9200" {
					t.Errorf("expected metrics listen addr 0.0.0.0:9200, got %s", cfg.Metrics.ListenAddr)
				}
			},
			teardown: func() {
				*flagMetrics = ""
			},
		},
		{
			name: "row-workers flag",
			setup: func() {
				*flagWorkers = 8
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Server.RowWorkers != 8 {
					t.Errorf("expected row workers 8, got %d", cfg.Server.RowWorkers)
				}
			},
			teardown: func() {
				*flagWorkers = 0
			},
		},
		{
			name: "textures-dir flag",
			setup: func() {
				*flagTexDir = "/custom/textures"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Textures.Dir != "/custom/textures" {
					t.Errorf("expected textures dir override, got %s", cfg.Textures.Dir)
				}
			},
			teardown: func() {
				*flagTexDir = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
server:
  listen_addr: "0.0.0.0:9001"
  row_workers: 2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWorkers = 16
	defer func() {
		*flagConfig = ""
		*flagWorkers = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// RowWorkers should be from flag (16), not file (2).
	if cfg.Server.RowWorkers != 16 {
		t.Errorf("expected row workers 16 from flag, got %d", cfg.Server.RowWorkers)
	}

	// ListenAddr should be from file since no flag override.
	if cfg.Server.ListenAddr != "0.0.0.0:9001" {
		t.Errorf("expected listen addr 0.0.0.0:9001 from file, got %s", cfg.Server.ListenAddr)
	}
}
