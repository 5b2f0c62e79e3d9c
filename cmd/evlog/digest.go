package main

import (
	"context"
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/evlog/evlog"
	"github.com/evlog/evlog/internal/types"
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:  "digest",
		Usage: "Summarize the selected log files without producing charts",
		Flags: append(filterFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg := evlog.DefaultConfig()
			if err := applyFilters(cmd, &cfg); err != nil {
				return err
			}

			return runDigest(cfg, cmd.String("format"))
		},
	}
}

//nolint:wrapcheck
func runDigest(cfg evlog.Config, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	files, err := evlog.SelectFiles(cfg)
	if err != nil {
		return err
	}

	meta := map[string]any{
		"files": len(files),
	}

	if len(files) > 0 {
		data, err := evlog.BuildDataset(cfg.LogDir, files)
		if err != nil {
			return err
		}

		meta["records"] = data.Len()
		meta["frequency"] = frequencyMeta(data)
		meta["totals"] = totalsMeta(data)

		if data.Len() > 0 {
			first, last := data.TimeBounds()
			meta["first_timestamp"] = first
			meta["last_timestamp"] = last
		}
	}

	result := &format.Data{
		Object: cfg.LogDir,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{result}, os.Stdout)
}

func frequencyMeta(data *types.Dataset) map[string]any {
	counts := make(map[string]any)
	for _, c := range evlog.Frequency(data) {
		counts[c.Event] = c.Count
	}

	return counts
}

func totalsMeta(data *types.Dataset) map[string]any {
	totals := make(map[string]any)

	for _, metric := range types.AllMetrics() {
		perEvent := make(map[string]any)
		for _, t := range evlog.MetricSum(data, metric) {
			perEvent[t.Event] = fmt.Sprintf("%g", t.Total)
		}

		totals[metric.String()] = perEvent
	}

	return totals
}
