// Package paths resolves where userenv keeps its own files. It follows the
// XDG Base Directory specification, with per-directory environment
// overrides.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for userenv
	EnvConfigDir = "USERENV_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for userenv
	EnvDataDir = "USERENV_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for userenv
	EnvStateDir = "USERENV_STATE_DIR"
)

// File and directory names. These are not user-configurable.
const (
	// AppDirName is the directory created under each XDG base directory
	AppDirName = "userenv"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// StoreFileName is the document used by the file store
	StoreFileName = "environment.toml"

	// LogFileName is the name of the log file
	LogFileName = "userenv.log"
)

// Paths holds the resolved userenv directories.
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New resolves directories from the environment at call time.
func New() *Paths {
	return &Paths{
		configDir: resolve(EnvConfigDir, xdg.ConfigHome),
		dataDir:   resolve(EnvDataDir, xdg.DataHome),
		stateDir:  resolve(EnvStateDir, xdg.StateHome),
	}
}

func resolve(override, base string) string {
	if dir := os.Getenv(override); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

// ConfigDir returns the userenv config directory.
func (p *Paths) ConfigDir() string { return p.configDir }

// DataDir returns the userenv data directory.
func (p *Paths) DataDir() string { return p.dataDir }

// StateDir returns the userenv state directory.
func (p *Paths) StateDir() string { return p.stateDir }

// ConfigFile returns the path of the user configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StoreFile returns the path of the file store document.
func (p *Paths) StoreFile() string {
	return filepath.Join(p.dataDir, StoreFileName)
}

// LogFile returns the path of the log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ConfigFile is New().ConfigFile().
func ConfigFile() string { return New().ConfigFile() }

// StoreFile is New().StoreFile().
func StoreFile() string { return New().StoreFile() }

// LogFile is New().LogFile().
func LogFile() string { return New().LogFile() }

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
