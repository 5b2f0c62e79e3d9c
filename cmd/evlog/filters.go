package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/evlog/evlog"
	"github.com/evlog/evlog/internal/logset"
	"github.com/evlog/evlog/internal/timeparse"
)

var errInvalidDateRange = errors.New("expected <start>T<end>, both as mm-dd-yyyy")

// filterFlags are the log selection flags shared by the report and digest
// subcommands.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "log-dir",
			Aliases:  []string{"d"},
			Usage:    "Directory holding the event log files",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "runtime",
			Aliases: []string{"r"},
			Usage:   "Only select logs produced by this runtime (e.g., GMT)",
		},
		&cli.IntFlag{
			Name:    "locality",
			Aliases: []string{"l"},
			Usage:   "Only select logs produced by this locality",
			Value:   logset.LocalityUnset,
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Only select logs from this day, as mm-dd-yyyy",
		},
		&cli.StringFlag{
			Name:  "date-range",
			Usage: "Only select logs from this range, as mm-dd-yyyyTmm-dd-yyyy (end exclusive)",
		},
	}
}

// applyFilters copies the shared selection flags into the config. Dates here
// are user input and parsed strictly, unlike record timestamps.
func applyFilters(cmd *cli.Command, cfg *evlog.Config) error {
	cfg.LogDir = cmd.String("log-dir")
	cfg.Runtime = cmd.String("runtime")
	cfg.Locality = int(cmd.Int("locality"))

	if raw := cmd.String("date"); raw != "" {
		date, err := time.Parse(timeparse.DateLayout, raw)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}

		cfg.Date = date
	}

	if raw := cmd.String("date-range"); raw != "" {
		start, end, err := parseDateRange(raw)
		if err != nil {
			return fmt.Errorf("--date-range: %w", err)
		}

		cfg.RangeStart = start
		cfg.RangeEnd = end
	}

	return nil
}

func parseDateRange(raw string) (time.Time, time.Time, error) {
	parts := strings.SplitN(raw, "T", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("%q: %w", raw, errInvalidDateRange)
	}

	start, err := time.Parse(timeparse.DateLayout, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := time.Parse(timeparse.DateLayout, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}
