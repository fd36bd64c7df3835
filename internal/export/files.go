package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jchantrell/wadload/internal/paths"
)

// LumpLoader resolves a lump name to its bytes
type LumpLoader interface {
	ResolveAndRead(name string) ([]byte, error)
}

// Exporter handles exporting lumps to disk
type Exporter struct {
	loader    LumpLoader
	outputDir string
}

// NewExporter creates a new lump exporter
func NewExporter(loader LumpLoader, outputDir string) *Exporter {
	return &Exporter{
		loader:    loader,
		outputDir: outputDir,
	}
}

// ProgressCallback is called to report export progress
type ProgressCallback func(current int, total int, description string)

// ExportLumps writes each named lump to <outputDir>/<NAME>.lmp. Names are
// resolved through the loader, so overridden lumps export their winning
// version. Repeated names are written once; two names sharing a file name
// are an error.
func (e *Exporter) ExportLumps(names []string, progressCallback ProgressCallback) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	if err := paths.EnsureDir(e.outputDir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// output path -> lump name written there
	seen := make(map[string]string, len(names))
	written := make([]string, 0, len(names))

	for i, name := range names {
		outputPath := filepath.Join(e.outputDir, FileName(name))
		if prev, ok := seen[outputPath]; ok {
			if prev == name {
				continue
			}
			return written, fmt.Errorf("lumps %q and %q both map to %s", prev, name, outputPath)
		}
		seen[outputPath] = name

		data, err := e.loader.ResolveAndRead(name)
		if err != nil {
			return written, fmt.Errorf("loading lump %s: %w", name, err)
		}
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return written, fmt.Errorf("writing lump %s: %w", outputPath, err)
		}
		written = append(written, outputPath)

		slog.Debug("Exported lump", "lump", name, "size", len(data), "output", outputPath)

		if progressCallback != nil {
			progressCallback(i+1, len(names), name)
		}
	}

	return written, nil
}

// FileName maps a lump name to a standalone lump file name. Characters that
// cannot appear in file names become '_'; names such as VILE[1 or VILE\1 are
// legal lump names.
func FileName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == '/', r == '\\', r == ':', r == '*', r == '?', r == '"', r == '<', r == '>', r == '|':
			return '_'
		default:
			return r
		}
	}, name)
	return mapped + ".lmp"
}
