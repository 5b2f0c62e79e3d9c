package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evlog/evlog"
	"github.com/evlog/evlog/internal/types"
)

// defaultsFile is the optional YAML settings file. Pointer fields distinguish
// "absent" from a zero value.
type defaultsFile struct {
	FontSizeX *float64 `yaml:"font_size_x"`
	FontSizeY *float64 `yaml:"font_size_y"`
	XRotation *float64 `yaml:"x_rotation"`
	YRotation *float64 `yaml:"y_rotation"`
	Width     *int     `yaml:"width"`
	Height    *int     `yaml:"height"`
	Color     *string  `yaml:"color"`
	Grid      *bool    `yaml:"grid"`
	Interval  *float64 `yaml:"interval"`
	Unit      *string  `yaml:"unit"`
}

func loadDefaults(path string, cfg *evlog.Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-specified settings file
	if err != nil {
		return fmt.Errorf("reading defaults file: %w", err)
	}

	var defaults defaultsFile
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return fmt.Errorf("parsing defaults file: %w", err)
	}

	if defaults.FontSizeX != nil {
		cfg.Style.FontSizeX = *defaults.FontSizeX
	}

	if defaults.FontSizeY != nil {
		cfg.Style.FontSizeY = *defaults.FontSizeY
	}

	if defaults.XRotation != nil {
		cfg.Style.XRotation = *defaults.XRotation
	}

	if defaults.YRotation != nil {
		cfg.Style.YRotation = *defaults.YRotation
	}

	if defaults.Width != nil {
		cfg.Style.Width = *defaults.Width
	}

	if defaults.Height != nil {
		cfg.Style.Height = *defaults.Height
	}

	if defaults.Color != nil {
		cfg.Style.Color = *defaults.Color
	}

	if defaults.Grid != nil {
		cfg.Style.Grid = *defaults.Grid
	}

	if defaults.Interval != nil {
		cfg.Interval = *defaults.Interval
	}

	if defaults.Unit != nil {
		cfg.Unit = types.ParseUnit(*defaults.Unit)
	}

	return nil
}
