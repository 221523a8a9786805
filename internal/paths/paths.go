// Package paths resolves the pymetheus configuration directory and locates
// library files on disk.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// LibraryFileName is the only file name recognized as a library database.
const LibraryFileName = "pymetheus.sqlite"

// ErrNoLibrary reports that no library file could be located.
var ErrNoLibrary = fmt.Errorf("no library found")

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific configuration directory,
// home of the optional config.yaml.
//
// Linux:   $XDG_CONFIG_HOME/pymetheus (fallback ~/.config/pymetheus)
// macOS:   ~/Library/Application Support/pymetheus
// Windows: %APPDATA%/pymetheus
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pymetheus"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "pymetheus"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pymetheus"), nil
	}
}

// DefaultDataDir returns the platform-specific data directory, the first
// place the library search probes.
//
// Linux:   $XDG_DATA_HOME/pymetheus (fallback ~/.local/share/pymetheus)
// macOS:   ~/Library/Application Support/pymetheus
// Windows: %APPDATA%/pymetheus
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "pymetheus"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "pymetheus"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pymetheus"), nil
	}
}

// SearchLibrary resolves a user-supplied path to a library file.
//
// A path naming an existing file is accepted as-is. A path naming a
// directory is probed for pymetheus.sqlite in that directory and then in
// each parent up to the filesystem root. Returns ErrNoLibrary when no
// probe hits.
func SearchLibrary(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, ErrNoLibrary)
		}
		return "", err
	}
	if !info.IsDir() {
		return abs, nil
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, LibraryFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	return "", fmt.Errorf("%s: %w", path, ErrNoLibrary)
}

// FindLibrary locates the library to open following the precedence chain:
// flag > config.yaml value > default data dir > CWD. Directory candidates
// are probed with SearchLibrary, so parent directories count.
func FindLibrary(flag, configValue string) (string, error) {
	if flag != "" {
		return SearchLibrary(flag)
	}
	if configValue != "" {
		return SearchLibrary(configValue)
	}

	if dataDir, err := DefaultDataDir(); err == nil {
		if found, err := SearchLibrary(dataDir); err == nil {
			return found, nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, err := SearchLibrary(cwd); err == nil {
		return found, nil
	}
	return "", ErrNoLibrary
}
