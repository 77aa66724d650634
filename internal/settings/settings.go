// Package settings loads and saves the user preference file. Preferences
// reach the session core through the session.SettingsProvider interface, so
// the core never reads the file itself.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/winmirror/winmirror/internal/model"
)

// Settings is the persisted user preference file.
type Settings struct {
	// FullscreenMode is the display area a fullscreen session covers:
	// current, primary, or virtual.
	FullscreenMode string `yaml:"fullscreenMode"`

	// RestoreLastSession reopens the most recent session when the viewer
	// starts with no arguments.
	RestoreLastSession bool `yaml:"restoreLastSession"`

	// HistoryLimit caps how many session records the history keeps.
	HistoryLimit int `yaml:"historyLimit"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{
		FullscreenMode: model.FullscreenCurrentScreen.String(),
		HistoryLimit:   50,
	}
}

// Path returns the settings file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "winmirror", "settings.yaml"), nil
}

// Load reads the settings file at the default path. A missing file is not an
// error: defaults are returned so first runs work without setup.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a settings file from an explicit path.
func LoadFrom(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	if s.HistoryLimit <= 0 {
		s.HistoryLimit = Default().HistoryLimit
	}
	return s, nil
}

// Save writes the settings file at the default path, creating the directory
// if needed.
func (s Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo writes the settings file to an explicit path.
func (s Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// DefaultFullscreenMode implements session.SettingsProvider. An unknown
// value in the file falls back to the current screen.
func (s Settings) DefaultFullscreenMode() model.FullscreenMode {
	mode, err := model.ParseFullscreenMode(s.FullscreenMode)
	if err != nil {
		return model.FullscreenCurrentScreen
	}
	return mode
}
