package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jchantrell/wadload/internal/iwad"
	"github.com/jchantrell/wadload/internal/paths"
	"github.com/jchantrell/wadload/internal/utils"
	"github.com/jchantrell/wadload/internal/wad"
)

// openCatalog builds the startup file list from the configuration and
// ingests it. The caller owns the returned catalog.
func openCatalog() (*wad.Catalog, error) {
	start := time.Now()

	opts := iwad.Options{
		DevMode: cfg.DevMode,
		Files:   cfg.Files,
	}
	if cfg.DevMode != "" {
		exeDir, err := paths.ExeDir()
		if err != nil {
			return nil, err
		}
		opts.ExeDir = exeDir
	}

	files := iwad.FindPaths(cfg.WadDir, opts)
	if len(files) == 0 {
		return nil, fmt.Errorf("no IWAD found in %s and no files given", cfg.WadDir)
	}

	catalog := wad.NewCatalog()
	ingested, err := catalog.IngestAll(files)
	if err != nil {
		catalog.Close()
		return nil, fmt.Errorf("loading archives: %w", err)
	}
	if ingested == 0 {
		return nil, fmt.Errorf("none of the %d files could be loaded", len(files))
	}

	slog.Info("Archives loaded",
		"files", ingested,
		"lumps", utils.Number(int64(len(catalog.Lumps()))),
		"duration", utils.Duration(time.Since(start)))

	return catalog, nil
}

func progressEnabled() bool {
	return !(noProgress || cfg.LogFormat == "json" || cfg.LogLevel == "debug")
}
