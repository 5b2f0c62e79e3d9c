package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/evlog/evlog"
	"github.com/evlog/evlog/internal/types"
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Chart event frequency, aggregated metrics, and time series from a log directory",
		Flags: append(filterFlags(),
			&cli.StringFlag{
				Name:    "image-dir",
				Aliases: []string{"f"},
				Usage:   "Directory receiving the chart files (defaults to the log directory)",
			},

			// Report selection.
			&cli.BoolFlag{
				Name:  "frequency",
				Usage: "Chart the per-event occurrence count",
			},
			&cli.StringFlag{
				Name:  "frequency-scale",
				Usage: "Y axis scale for the frequency chart: linear, log",
			},
			&cli.BoolFlag{
				Name:  "totals",
				Usage: "Chart the aggregated per-event metric",
			},
			&cli.StringFlag{
				Name:  "totals-metric",
				Usage: "Metric to aggregate: ET, IS, OS, LI",
				Value: types.MetricExecTime.String(),
			},
			&cli.StringFlag{
				Name:  "totals-scale",
				Usage: "Y axis scale for the totals chart: linear, log",
			},
			&cli.BoolFlag{
				Name:  "series",
				Usage: "Chart per-event metric values over elapsed time",
			},
			&cli.StringSliceFlag{
				Name:    "series-event",
				Aliases: []string{"e"},
				Usage:   "Event name to include in the series charts (repeatable; default: all)",
			},
			&cli.StringSliceFlag{
				Name:    "series-metric",
				Aliases: []string{"m"},
				Usage:   "Metric column to chart: ET, IS, OS, LI (repeatable; default: all)",
			},
			&cli.StringFlag{
				Name:  "series-scale",
				Usage: "Y axis scale for the series charts: linear, log",
			},
			&cli.FloatFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Time bucket size on the series x-axis, in the selected unit",
				Value:   10,
			},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Usage:   "Elapsed time unit: s, m, h, d, mn (kb, mb, gb, tb are accepted for size metrics but not yet applied)",
				Value:   "s",
			},
			&cli.BoolFlag{
				Name:  "combined",
				Usage: "Overlay all selected events in one chart per metric",
			},
			&cli.BoolFlag{
				Name:  "display",
				Usage: "Show charts in the system image viewer instead of writing files",
			},

			// Style.
			&cli.FloatFlag{
				Name:  "font-size-x",
				Usage: "X axis font size",
				Value: evlog.DefaultStyle().FontSizeX,
			},
			&cli.FloatFlag{
				Name:  "font-size-y",
				Usage: "Y axis font size",
				Value: evlog.DefaultStyle().FontSizeY,
			},
			&cli.FloatFlag{
				Name:  "x-rotation",
				Usage: "X axis label rotation in degrees (series charts)",
			},
			&cli.FloatFlag{
				Name:  "y-rotation",
				Usage: "Y axis label rotation in degrees",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Chart width in pixels",
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "Chart height in pixels",
			},
			&cli.StringFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "Line color for single-event series charts: b, g, r, c, m, y, k, w",
				Value:   evlog.DefaultStyle().Color,
			},
			&cli.BoolFlag{
				Name:  "grid",
				Usage: "Draw grid lines on series charts",
				Value: true,
			},

			&cli.StringFlag{
				Name:  "defaults",
				Usage: "YAML file with style and series defaults (flags take precedence)",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			return evlog.Generate(cfg)
		},
	}
}

func buildConfig(cmd *cli.Command) (evlog.Config, error) {
	cfg := evlog.DefaultConfig()

	if path := cmd.String("defaults"); path != "" {
		if err := loadDefaults(path, &cfg); err != nil {
			return evlog.Config{}, err
		}
	}

	if err := applyFilters(cmd, &cfg); err != nil {
		return evlog.Config{}, err
	}

	cfg.ImageDir = cmd.String("image-dir")

	cfg.Frequency = cmd.Bool("frequency")
	cfg.FrequencyScaleY = cmd.String("frequency-scale")

	cfg.Totals = cmd.Bool("totals")
	cfg.TotalsScaleY = cmd.String("totals-scale")

	metric, err := types.ParseMetric(cmd.String("totals-metric"))
	if err != nil {
		return evlog.Config{}, fmt.Errorf("--totals-metric: %w", err)
	}

	cfg.TotalsMetric = metric

	cfg.Series = cmd.Bool("series")
	cfg.SeriesEvents = cmd.StringSlice("series-event")
	cfg.SeriesScaleY = cmd.String("series-scale")

	for _, raw := range cmd.StringSlice("series-metric") {
		metric, err = types.ParseMetric(raw)
		if err != nil {
			return evlog.Config{}, fmt.Errorf("--series-metric: %w", err)
		}

		cfg.SeriesMetrics = append(cfg.SeriesMetrics, metric)
	}

	if cmd.IsSet("interval") {
		cfg.Interval = cmd.Float("interval")
	}

	if cmd.IsSet("unit") {
		cfg.Unit = types.ParseUnit(cmd.String("unit"))
	}

	cfg.Combined = cmd.Bool("combined")
	cfg.Display = cmd.Bool("display")

	applyStyleFlags(cmd, &cfg.Style)

	return cfg, nil
}

// applyStyleFlags overrides the style settings with any flag the user set
// explicitly, leaving defaults-file values in place otherwise.
func applyStyleFlags(cmd *cli.Command, style *evlog.Style) {
	if cmd.IsSet("font-size-x") {
		style.FontSizeX = cmd.Float("font-size-x")
	}

	if cmd.IsSet("font-size-y") {
		style.FontSizeY = cmd.Float("font-size-y")
	}

	if cmd.IsSet("x-rotation") {
		style.XRotation = cmd.Float("x-rotation")
	}

	if cmd.IsSet("y-rotation") {
		style.YRotation = cmd.Float("y-rotation")
	}

	if cmd.IsSet("width") {
		style.Width = int(cmd.Int("width"))
	}

	if cmd.IsSet("height") {
		style.Height = int(cmd.Int("height"))
	}

	if cmd.IsSet("color") {
		style.Color = cmd.String("color")
	}

	if cmd.IsSet("grid") {
		style.Grid = cmd.Bool("grid")
	}
}
