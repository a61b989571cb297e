// Package main is the entry point for the voxelmon render server.
package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/voxelmon/server/internal/config"
	"github.com/voxelmon/server/internal/logger"
	"github.com/voxelmon/server/internal/metrics"
	"github.com/voxelmon/server/internal/texture"
	"github.com/voxelmon/server/internal/transport"
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
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== voxelmon render server ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("wrote effective config", zap.String("path", path))
		return
	}

	textures, err := loadTextures(cfg.Textures.Dir)
	if err != nil {
		logger.Error("failed to load textures", zap.Error(err))
		os.Exit(1)
	}

	reg := metrics.New()
	go serveMetrics(cfg.Metrics.ListenAddr, reg)

	srv := &transport.Server{
		Textures: textures,
		Metrics:  reg,
		Workers:  cfg.Server.RowWorkers,
	}

	logger.Info("listening for sessions", zap.String("addr", cfg.Server.ListenAddr))
	if err := http.ListenAndServe(cfg.Server.ListenAddr, srv); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server closed normally")
}

// loadTextures uses dir's override BMPs if configured, otherwise the
// compiled-in default set.
func loadTextures(dir string) (*texture.Table, error) {
	if dir == "" {
		return texture.NewTable()
	}
	return texture.NewTableFromDir(dir)
}

func serveMetrics(addr string, reg *metrics.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server error", zap.Error(err))
	}
}
