package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader locates and reads the configuration file.
type Loader struct {
	Version      string // dev builds also look in the working directory
	OverridePath string
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{Version: version, OverridePath: overridePath}
}

// Load reads the first configuration file found, or returns defaults when
// there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the configuration file in use, or "" when none exists.
func (l *Loader) Path() string {
	for _, p := range l.candidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath is where Save writes when no configuration file exists yet.
func (l *Loader) DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}
	return filepath.Join(home, ".config", "shinypaint", "config.rc"), nil
}

// Save writes cfg to the active configuration file, creating the default
// one if needed, and returns the path written.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.Path()
	if path == "" {
		var err error
		if path, err = l.DefaultPath(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(cfg.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}

func (l *Loader) candidates() []string {
	var out []string
	if l.OverridePath != "" {
		out = append(out, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			out = append(out, filepath.Join(wd, ".shinypaintrc"))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".config", "shinypaint")
		out = append(out, filepath.Join(dir, "config.rc"), filepath.Join(dir, "shinypaint.rc"))
	}
	return out
}
