// Package types holds the core data model shared by the ingestion pipeline.
package types

import (
	"fmt"
	"slices"
	"strings"
)

// Metric identifies one of the numeric columns carried by every log record.
type Metric int

const (
	MetricExecTime   Metric = iota // ET, seconds
	MetricInputSize                // IS, bytes
	MetricOutputSize               // OS, bytes
	MetricLoopCount                // LI, iterations
)

// String returns the column key as it appears in the log records.
func (m Metric) String() string {
	switch m {
	case MetricExecTime:
		return "ET"
	case MetricInputSize:
		return "IS"
	case MetricOutputSize:
		return "OS"
	case MetricLoopCount:
		return "LI"
	}

	return "unknown"
}

// Title returns the human-readable metric name.
func (m Metric) Title() string {
	switch m {
	case MetricExecTime:
		return "Execution time"
	case MetricInputSize:
		return "Input size"
	case MetricOutputSize:
		return "Output size"
	case MetricLoopCount:
		return "Loop counter"
	}

	return "unknown"
}

// AxisLabel returns the y-axis label for the metric. Execution time carries
// the active time unit; sizes are always labeled in bytes (the kb/mb/gb/tb
// knob from the help text is documented but not applied to values).
func (m Metric) AxisLabel(timeUnit string) string {
	switch m {
	case MetricExecTime:
		return "Execution time (" + timeUnit + ")"
	case MetricInputSize:
		return "Input size (byte)"
	case MetricOutputSize:
		return "Output size (byte)"
	case MetricLoopCount:
		return "Loop counter"
	}

	return "unknown"
}

// ParseMetric converts a column key to a Metric value.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToUpper(s) {
	case "ET":
		return MetricExecTime, nil
	case "IS":
		return MetricInputSize, nil
	case "OS":
		return MetricOutputSize, nil
	case "LI":
		return MetricLoopCount, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (valid: ET, IS, OS, LI)", s)
	}
}

// AllMetrics returns every metric column, in record order.
func AllMetrics() []Metric {
	return []Metric{MetricExecTime, MetricInputSize, MetricOutputSize, MetricLoopCount}
}

// Unit is the divisor applied to elapsed-time values.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitMinutes
	UnitHours
	UnitDays
	UnitMonths // 30-day months
)

// ParseUnit maps a unit token to a Unit. Tokens are matched case-insensitively;
// anything unrecognized leaves values in raw seconds.
func ParseUnit(s string) Unit {
	switch strings.ToLower(s) {
	case "m", "min":
		return UnitMinutes
	case "h", "hr", "hour":
		return UnitHours
	case "d", "day":
		return UnitDays
	case "mn", "month":
		return UnitMonths
	default:
		return UnitSeconds
	}
}

// Divisor returns the number of seconds in one unit.
func (u Unit) Divisor() float64 {
	switch u {
	case UnitMinutes:
		return 60
	case UnitHours:
		return 60 * 60
	case UnitDays:
		return 60 * 60 * 24
	case UnitMonths:
		return 60 * 60 * 24 * 30
	default:
		return 1
	}
}

func (u Unit) String() string {
	switch u {
	case UnitMinutes:
		return "minutes"
	case UnitHours:
		return "hours"
	case UnitDays:
		return "days"
	case UnitMonths:
		return "months"
	default:
		return "seconds"
	}
}

// LogRecord is one ingested event occurrence, immutable once read.
type LogRecord struct {
	Event      string  // EN
	Timestamp  string  // TS, ISO-like pattern
	ExecTime   float64 // ET, seconds
	InputSize  float64 // IS, bytes
	OutputSize float64 // OS, bytes
	LoopCount  float64 // LI
}

// Value returns the record's value for a metric column.
func (r LogRecord) Value(m Metric) float64 {
	switch m {
	case MetricExecTime:
		return r.ExecTime
	case MetricInputSize:
		return r.InputSize
	case MetricOutputSize:
		return r.OutputSize
	case MetricLoopCount:
		return r.LoopCount
	}

	return 0
}

// Dataset is the ordered collection of records built once per report run.
// Elapsed is the derived time-since-start column, populated by the
// aggregator in the unit chosen for the run.
type Dataset struct {
	Records []LogRecord
	Elapsed []float64
}

// Len returns the row count.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Events returns the distinct event names, sorted.
func (d *Dataset) Events() []string {
	seen := make(map[string]struct{}, len(d.Records))
	names := make([]string, 0, len(d.Records))

	for _, rec := range d.Records {
		if _, ok := seen[rec.Event]; ok {
			continue
		}

		seen[rec.Event] = struct{}{}
		names = append(names, rec.Event)
	}

	slices.Sort(names)

	return names
}

// TimeBounds returns the lexically smallest and largest raw timestamps.
// The ISO-like timestamp pattern sorts chronologically as a string.
func (d *Dataset) TimeBounds() (first, last string) {
	if len(d.Records) == 0 {
		return "", ""
	}

	first, last = d.Records[0].Timestamp, d.Records[0].Timestamp
	for _, rec := range d.Records[1:] {
		if rec.Timestamp < first {
			first = rec.Timestamp
		}

		if rec.Timestamp > last {
			last = rec.Timestamp
		}
	}

	return first, last
}

// Column returns the metric column across all rows, in row order.
func (d *Dataset) Column(m Metric) []float64 {
	values := make([]float64, len(d.Records))
	for i, rec := range d.Records {
		values[i] = rec.Value(m)
	}

	return values
}
