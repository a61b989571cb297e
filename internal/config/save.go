package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validate rejects a config that would prevent the server from ever
// starting — a bad listen address, a negative worker count — before it's
// ever written to disk. The desktop client this package is adapted from
// never needed this: its settings UI only ever produced values the form
// already constrained to be valid. A YAML file handed to --write-config
// or hand-edited by an operator has no such guarantee.
func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		return fmt.Errorf("config: server.listen_addr %q: %w", c.Server.ListenAddr, err)
	}
	if _, _, err := net.SplitHostPort(c.Metrics.ListenAddr); err != nil {
		return fmt.Errorf("config: metrics.listen_addr %q: %w", c.Metrics.ListenAddr, err)
	}
	if c.Server.RowWorkers < 0 {
		return fmt.Errorf("config: server.row_workers must be >= 0, got %d", c.Server.RowWorkers)
	}
	return nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo validates c and writes it to path, creating the parent directory
// if needed. Used by cmd/server's --write-config flag to dump the
// fully-resolved (defaults < file < flags) config for an operator to keep
// and edit going forward.
func (c *Config) SaveTo(path string) error {
	if err := c.validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
