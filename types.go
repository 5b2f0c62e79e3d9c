package evlog

import (
	"time"

	"github.com/evlog/evlog/internal/logset"
	"github.com/evlog/evlog/internal/types"
)

// Config is the validated set of user-supplied options for one report run.
// It is fully populated by the CLI layer and read-only from here on; the
// pipeline never mutates it.
type Config struct {
	// LogDir is the directory holding the runtime's log files. Required.
	LogDir string
	// ImageDir receives the chart files. Defaults to LogDir.
	ImageDir string

	// Selection filters. Runtime and Locality take precedence over a date
	// range; see logset.Select for the exact rules.
	Runtime    string
	Locality   int // logset.LocalityUnset disables the filter
	Date       time.Time
	RangeStart time.Time
	RangeEnd   time.Time // exclusive

	// Frequency enables the per-event occurrence count chart.
	Frequency       bool
	FrequencyScaleY string

	// Totals enables the aggregated per-event metric chart.
	Totals       bool
	TotalsMetric types.Metric
	TotalsScaleY string

	// Series enables the per-event elapsed-time series charts.
	Series        bool
	SeriesEvents  []string       // nil selects every distinct event
	SeriesMetrics []types.Metric // nil selects all four metric columns
	SeriesScaleY  string
	Interval      float64 // time bucket size on the series x-axis
	Unit          types.Unit
	// Combined overlays all requested events in one chart per metric
	// instead of one chart per (event, metric) pair.
	Combined bool

	// Display shows charts in the system image viewer instead of writing
	// SVG files. Mutually exclusive with on-disk output per invocation.
	Display bool

	Style Style
}

// Style carries the chart formatting knobs shared by every report type.
type Style struct {
	FontSizeX float64
	FontSizeY float64
	XRotation float64 // series charts only; bar charts rotate labels 30 degrees
	YRotation float64
	Width     int
	Height    int
	Color     string // single-event line color: b, g, r, c, m, y, k, w
	Grid      bool
}

// DefaultConfig returns a Config with the documented defaults applied.
func DefaultConfig() Config {
	return Config{
		Locality:     logset.LocalityUnset,
		TotalsMetric: types.MetricExecTime,
		Interval:     10,
		Unit:         types.UnitSeconds,
		Style:        DefaultStyle(),
	}
}

// DefaultStyle returns the default chart formatting.
func DefaultStyle() Style {
	return Style{
		FontSizeX: 7,
		FontSizeY: 7,
		Color:     "k",
		Grid:      true,
	}
}
