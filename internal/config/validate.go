package config

import (
	"fmt"

	"github.com/jchantrell/wadload/internal/iwad"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// validateFiles ensures supplemental file paths are non-empty. Extensions are
// checked at ingestion, where an unsupported file is skipped rather than fatal.
func validateFiles(files []string) error {
	for i, file := range files {
		if file == "" || file == "~" {
			return fmt.Errorf("file %d: path cannot be empty", i)
		}
	}
	return nil
}

// validateDevMode accepts an empty mode or one of the developer modes
func validateDevMode(mode string) error {
	if mode == "" || iwad.IsDevMode(mode) {
		return nil
	}
	return fmt.Errorf("unsupported dev mode '%s': supported modes are %s, %s, %s",
		mode, iwad.DevShareware, iwad.DevRegistered, iwad.DevCommercial)
}

func validateLogging(level, format string) error {
	if !validLogLevels[level] {
		return fmt.Errorf("unsupported log level '%s': supported levels are debug, info, warn, error", level)
	}
	if !validLogFormats[format] {
		return fmt.Errorf("unsupported log format '%s': supported formats are text, json", format)
	}
	return nil
}
