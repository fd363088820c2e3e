package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads scene configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadScene loads scenes/<name>.json and fills in defaults
func (l *Loader) LoadScene(name string) (*AppConfig, error) {
	path := "scenes/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", name, err)
	}
	return &cfg, nil
}

// ListScenes returns the names of the scenes under scenes/
func (l *Loader) ListScenes() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "scenes/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[len("scenes/"):len(m)-len(".json")])
	}
	return names, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Display.Width <= 0 {
		c.Display.Width = 1280
	}
	if c.Display.Height <= 0 {
		c.Display.Height = 720
	}
	if c.Display.Title == "" {
		c.Display.Title = "XR Scene"
	}
	if c.Display.TPS <= 0 {
		c.Display.TPS = 60
	}
	if c.XR.Host == "" {
		c.XR.Host = HostSimulator
	}
	if c.XR.ReferenceSpace == "" {
		c.XR.ReferenceSpace = "local"
	}
}

// Validate checks the fields the scene builder cannot default
func (c *AppConfig) Validate() error {
	for i, comp := range c.Scene.Components {
		if comp.Type != TypeCard && comp.Type != TypeRoom {
			return fmt.Errorf("component %d: unknown type %q", i, comp.Type)
		}
	}
	if c.XR.Host != HostSimulator && c.XR.Host != HostNone {
		return fmt.Errorf("unknown xr host %q", c.XR.Host)
	}
	return nil
}
