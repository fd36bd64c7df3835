package iwad

import (
	"log/slog"
	"path/filepath"

	"github.com/jchantrell/wadload/internal/paths"
)

// Developer modes load unpacked data next to the executable instead of
// searching for an IWAD
const (
	DevShareware  = "shdev"
	DevRegistered = "regdev"
	DevCommercial = "comdev"
)

const (
	DevDataDir = "devdata"
	DevMapsDir = "devmaps"
)

var devFiles = map[string][]string{
	DevShareware: {
		filepath.Join(DevDataDir, "doom1.wad"),
		filepath.Join(DevMapsDir, "cdata", "texture1.lmp"),
		filepath.Join(DevMapsDir, "cdata", "pnames.lmp"),
	},
	DevRegistered: {
		filepath.Join(DevDataDir, "doom.wad"),
		filepath.Join(DevMapsDir, "cdata", "texture1.lmp"),
		filepath.Join(DevMapsDir, "cdata", "texture2.lmp"),
		filepath.Join(DevMapsDir, "cdata", "pnames.lmp"),
	},
	DevCommercial: {
		filepath.Join(DevDataDir, "doom2.wad"),
		filepath.Join(DevMapsDir, "cdata", "texture1.lmp"),
		filepath.Join(DevMapsDir, "cdata", "pnames.lmp"),
	},
}

// IsDevMode reports whether mode names a developer mode
func IsDevMode(mode string) bool {
	_, ok := devFiles[mode]
	return ok
}

// Options controls which files FindPaths returns
type Options struct {
	// DevMode is empty or one of DevShareware, DevRegistered, DevCommercial
	DevMode string
	// ExeDir is the base for developer mode files
	ExeDir string
	// Files are supplemental archives appended last, in order
	Files []string
}

// FindPaths returns the files to ingest, lowest priority first: developer
// files when a dev mode is set, otherwise the first known IWAD present in
// wadDir, followed by opts.Files.
func FindPaths(wadDir string, opts Options) []string {
	var files []string

	if dev, ok := devFiles[opts.DevMode]; ok {
		for _, f := range dev {
			files = append(files, filepath.Join(opts.ExeDir, f))
		}
		slog.Debug("Using developer files", "mode", opts.DevMode, "dir", opts.ExeDir)
	} else if iwad, ok := FindIWAD(wadDir); ok {
		files = append(files, iwad)
	} else {
		slog.Warn("No IWAD found", "dir", wadDir)
	}

	return append(files, opts.Files...)
}

// FindIWAD returns the path of the first known IWAD present in dir
func FindIWAD(dir string) (string, bool) {
	for _, info := range Known {
		path := filepath.Join(dir, info.Name)
		if paths.FileExists(path) {
			slog.Debug("Found IWAD", "path", path, "game", info.GameType, "language", info.Language)
			return path, true
		}
	}
	return "", false
}
