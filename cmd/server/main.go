// Package main - Entry point for the databricks-cost API server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"databricks-cost/api"
	"databricks-cost/core/catalog"
	"databricks-cost/core/rates"
	"databricks-cost/internal/config"
	"databricks-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgPath := flag.String("config", "", "Config file path")
	dataDir := flag.String("data-dir", "", "Rate data directory (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Error("failed to load config", zap.Error(err))
			return
		}
		cfg = loaded
		config.Set(cfg)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Println("failed to initialize logging:", err)
	}
	defer logging.Sync()

	store := rates.LoadDir(cfg.Data.Dir, rates.DefaultDataFiles())
	specs := catalog.Load(filepath.Join(cfg.Data.Dir, cfg.Data.InstanceSpecsFile))

	apiServer := api.NewServer(version, store, specs, cfg.Defaults)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("server starting",
		zap.String("addr", *addr), zap.String("data_dir", cfg.Data.Dir))

	if err := http.ListenAndServe(*addr, mux); err != nil {
		logging.Error("server stopped", zap.Error(err))
	}
}
