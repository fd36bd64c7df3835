package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the file looked up in the home and working directories
const ConfigFileName = ".doomrc"

// HomeDir returns the user's home directory, or "." when it is unknown
func HomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// ConfigFile returns the default config file location
func ConfigFile() string {
	return filepath.Join(HomeDir(), ConfigFileName)
}

// ExeDir returns the directory containing the running executable
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// WorkingDir returns the current directory, or "." when it is unknown
func WorkingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// EnsureDir creates a directory and all parent directories
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
