package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/isoedit/mapstore"
	"github.com/milk9111/isoedit/tile"
)

//go:embed editor.yaml
var defaultConfig []byte

type Config struct {
	Map    MapConfig    `yaml:"map"`
	View   ViewConfig   `yaml:"view"`
	Window WindowConfig `yaml:"window"`
	Seed   SeedConfig   `yaml:"seed"`
}

type MapConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	LandID  uint16 `yaml:"land_id"`
	MaxUndo int    `yaml:"max_undo"`
}

type ViewConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
	ZScale     int `yaml:"z_scale"`
	PanelWidth int `yaml:"panel_width"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SeedConfig struct {
	Land    []SeedLand        `yaml:"land"`
	Statics []tile.StaticTile `yaml:"statics"`
}

type SeedLand struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
	Z int8   `yaml:"z"`
}

// loadConfig decodes the embedded defaults, then overlays path if given.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		// Statics are replaced rather than merged with the defaults.
		cfg.Seed = SeedConfig{}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("config: map size must be positive, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if c.Map.Width > 1<<16 || c.Map.Height > 1<<16 {
		return fmt.Errorf("config: map size %dx%d exceeds tile coordinate range", c.Map.Width, c.Map.Height)
	}
	if c.View.TileWidth < 2 || c.View.TileHeight < 2 {
		return fmt.Errorf("config: tile size must be at least 2x2, got %dx%d", c.View.TileWidth, c.View.TileHeight)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// buildStore creates the map described by the config.
func (c *Config) buildStore() *mapstore.Store {
	s := mapstore.New(c.Map.Width, c.Map.Height, c.Map.LandID)
	for _, l := range c.Seed.Land {
		s.SetLandZ(l.X, l.Y, l.Z)
	}
	for _, st := range c.Seed.Statics {
		s.AddStatic(st)
	}
	s.SetMaxUndo(c.Map.MaxUndo)
	// Seeding is not an edit the user can undo.
	s.ClearUndo()
	return s
}
