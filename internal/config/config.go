// internal/config/config.go
//
// This package handles the optional .garden/config.yaml file.
// The program never writes the file; a missing file means defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GardenDir is the directory looked up in the working directory
	GardenDir = ".garden"

	InterfacePrompt = "prompt"
	InterfacePicker = "picker"

	defaultLogbookPath = "logs/session.log"
)

// LogbookConfig controls the session journal.
type LogbookConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// ProjectConfig models .garden/config.yaml.
type ProjectConfig struct {
	Version   int           `yaml:"version"`
	Interface string        `yaml:"interface"`
	Logbook   LogbookConfig `yaml:"logbook"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory the program was started from
	ProjectDir string

	// GardenProjectDir is ProjectDir/.garden
	GardenProjectDir string

	Project ProjectConfig
}

// Load builds a Config for projectDir, reading .garden/config.yaml when present.
func Load(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		GardenProjectDir: filepath.Join(projectDir, GardenDir),
		Project:          defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.GardenProjectDir, "config.yaml")
}

// Interface returns the selected front-end.
func (c *Config) Interface() string {
	return c.Project.Interface
}

// LogbookPath returns the journal location, or "" when logging is disabled.
func (c *Config) LogbookPath() string {
	if !c.Project.Logbook.Enabled {
		return ""
	}
	return c.Project.Logbook.Path
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.GardenProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:   1,
		Interface: InterfacePrompt,
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Interface) == "" {
		pc.Interface = InterfacePrompt
	}
	if pc.Logbook.Enabled && strings.TrimSpace(pc.Logbook.Path) == "" {
		pc.Logbook.Path = defaultLogbookPath
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Interface = strings.ToLower(strings.TrimSpace(pc.Interface))
	pc.Logbook.Path = resolvePath(base, pc.Logbook.Path)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch pc.Interface {
	case InterfacePrompt, InterfacePicker:
	default:
		return fmt.Errorf("interface must be '%s' or '%s'", InterfacePrompt, InterfacePicker)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
