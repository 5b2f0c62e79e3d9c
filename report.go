// Package evlog ingests JSON event-log records emitted by a distributed
// runtime and produces descriptive charts: per-event frequency, aggregated
// per-event metrics, and per-event elapsed-time series.
package evlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/evlog/evlog/internal/dataset"
	"github.com/evlog/evlog/internal/logset"
	"github.com/evlog/evlog/internal/merge"
	"github.com/evlog/evlog/internal/render"
	"github.com/evlog/evlog/internal/types"
)

// ArtifactName is the transient merged-JSON artifact, recreated inside the
// log directory's tmp subdirectory on every merge. Two concurrent runs
// against the same log directory race on it; that is a documented limitation.
const ArtifactName = "temp.json"

// SelectFiles resolves the effective date filter (an explicit range start
// wins over a single date) and returns the matching log file paths. An empty
// selection is not an error.
func SelectFiles(cfg Config) ([]string, error) {
	start := cfg.RangeStart
	if start.IsZero() {
		start = cfg.Date
	}

	return logset.Select(cfg.LogDir, cfg.Runtime, cfg.Locality, start, cfg.RangeEnd)
}

// BuildDataset merges the selected files into the transient artifact under
// logDir and loads it into a Dataset. A structural failure here means no
// report can be produced for the selection.
func BuildDataset(logDir string, files []string) (*types.Dataset, error) {
	workDir := filepath.Join(logDir, "tmp")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}

	artifact := filepath.Join(workDir, ArtifactName)

	slog.Info("merging selected log files", "files", len(files), "artifact", artifact)

	if err := merge.Merge(files, artifact); err != nil {
		return nil, err
	}

	slog.Info("loading dataset")

	return dataset.Build(artifact)
}

// Generate runs one report pass: select files, build the dataset on first
// use, then produce whichever reports cfg enables, handing the computed
// series to the chart sink. Nothing is retried; the first failure aborts the
// remaining pipeline.
func Generate(cfg Config) error {
	if cfg.ImageDir == "" {
		cfg.ImageDir = cfg.LogDir
	}

	files, err := SelectFiles(cfg)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		slog.Info("no log files matched the selection; nothing to report")

		return nil
	}

	sink, err := render.New(cfg.ImageDir, cfg.Display)
	if err != nil {
		return err
	}

	var data *types.Dataset

	buildOnce := func() (*types.Dataset, error) {
		if data != nil {
			return data, nil
		}

		data, err = BuildDataset(cfg.LogDir, files)

		return data, err
	}

	if cfg.Frequency {
		if err = frequencyReport(cfg, buildOnce, sink); err != nil {
			return err
		}
	}

	if cfg.Totals {
		if err = totalsReport(cfg, buildOnce, sink); err != nil {
			return err
		}
	}

	if cfg.Series {
		if err = seriesReport(cfg, buildOnce, sink); err != nil {
			return err
		}
	}

	return nil
}

type datasetFn func() (*types.Dataset, error)

func frequencyReport(cfg Config, build datasetFn, sink *render.Sink) error {
	data, err := build()
	if err != nil {
		return err
	}

	if data.Len() == 0 {
		return nil
	}

	counts := Frequency(data)

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))

	for i, c := range counts {
		labels[i] = c.Event
		values[i] = float64(c.Count)
	}

	return sink.Bar(labels, values, barOptions(cfg,
		"Event name", "Frequency", "Event frequency plot", cfg.FrequencyScaleY))
}

func totalsReport(cfg Config, build datasetFn, sink *render.Sink) error {
	data, err := build()
	if err != nil {
		return err
	}

	if data.Len() == 0 {
		return nil
	}

	metric := cfg.TotalsMetric
	totals := MetricSum(data, metric)

	labels := make([]string, len(totals))
	values := make([]float64, len(totals))

	for i, t := range totals {
		labels[i] = t.Event
		values[i] = t.Total
	}

	return sink.Bar(labels, values, barOptions(cfg,
		"Event name", totalsYLabel(metric, cfg.TotalsScaleY), metricTitle(metric), cfg.TotalsScaleY))
}

func seriesReport(cfg Config, build datasetFn, sink *render.Sink) error {
	data, err := build()
	if err != nil {
		return err
	}

	if data.Len() == 0 {
		return nil
	}

	events := cfg.SeriesEvents
	if len(events) == 0 {
		events = data.Events()
	}

	allSeries := TimeSeries(data, events, cfg.SeriesMetrics, cfg.Interval, cfg.Unit)

	for _, metricSeries := range allSeries {
		if err = renderMetricSeries(cfg, sink, metricSeries); err != nil {
			return err
		}
	}

	return nil
}

func renderMetricSeries(cfg Config, sink *render.Sink, metricSeries MetricSeries) error {
	unitName := metricSeries.Unit.String()
	ylabel := metricSeries.Metric.AxisLabel(unitName)
	title := metricTitle(metricSeries.Metric)

	opts := render.Options{
		Title:     title,
		XLabel:    "Time in " + unitName,
		YLabel:    ylabel,
		XRotation: cfg.Style.XRotation,
		YRotation: cfg.Style.YRotation,
		FontSizeX: cfg.Style.FontSizeX,
		FontSizeY: cfg.Style.FontSizeY,
		ScaleY:    cfg.SeriesScaleY,
		Width:     cfg.Style.Width,
		Height:    cfg.Style.Height,
		Grid:      cfg.Style.Grid,
		XTicks:    metricSeries.Ticks,
	}

	lines := make([]render.Series, 0, len(metricSeries.Events))

	for rank, eventSeries := range metricSeries.Events {
		color := render.Color(cfg.Style.Color)
		if len(metricSeries.Events) > 1 {
			color = render.RankColor(rank, len(metricSeries.Events))
		}

		lines = append(lines, render.Series{
			Name:  eventSeries.Event,
			X:     eventSeries.X,
			Y:     eventSeries.Y,
			Color: color,
		})
	}

	if cfg.Combined {
		opts.FileName = fmt.Sprintf("%s for all events and %s_%s",
			ylabel, metricSeries.Metric.Title(), render.Stamp())

		return sink.Lines(lines, opts)
	}

	for _, line := range lines {
		single := opts
		single.Title = title + " for " + line.Name
		single.FileName = fmt.Sprintf("%s for event (%s)_%s", ylabel, line.Name, render.Stamp())

		if err := sink.Lines([]render.Series{line}, single); err != nil {
			return err
		}
	}

	return nil
}

func barOptions(cfg Config, xlabel, ylabel, title, scaleY string) render.Options {
	return render.Options{
		Title:     title,
		XLabel:    xlabel,
		YLabel:    ylabel,
		XRotation: 30,
		FontSizeX: cfg.Style.FontSizeX,
		FontSizeY: cfg.Style.FontSizeY,
		ScaleY:    scaleY,
		Width:     cfg.Style.Width,
		Height:    cfg.Style.Height,
	}
}

func metricTitle(metric types.Metric) string {
	return "Event " + strings.ToLower(metric.Title()) + " plot"
}

func totalsYLabel(metric types.Metric, scale string) string {
	var label string

	switch metric {
	case types.MetricExecTime:
		label = "Aggregated execution time (sec)"
	case types.MetricInputSize:
		label = "Aggregated input size (byte)"
	case types.MetricOutputSize:
		label = "Aggregated output size (byte)"
	case types.MetricLoopCount:
		label = "Aggregated loop counter"
	}

	if strings.EqualFold(scale, "log") {
		label += " in logarithmic scale"
	}

	return label
}
