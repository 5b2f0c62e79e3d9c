package evlog

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/evlog/evlog/internal/timeparse"
	"github.com/evlog/evlog/internal/types"
)

// EventCount is one event's occurrence count.
type EventCount struct {
	Event string
	Count int
}

// EventTotal is one event's summed metric value.
type EventTotal struct {
	Event string
	Total float64
}

// EventSeries is one event's elapsed-time series for a single metric.
type EventSeries struct {
	Event string
	X     []float64 // elapsed time since the earliest record, in the run's unit
	Y     []float64 // metric values, in row order
}

// MetricSeries groups the per-event series of one metric column together
// with the precomputed time bucket boundaries for the chart axis.
type MetricSeries struct {
	Metric types.Metric
	Unit   types.Unit
	Ticks  []float64
	Events []EventSeries
}

// Frequency counts rows per event name. Results are sorted by event name;
// callers must not rely on any particular order.
func Frequency(data *types.Dataset) []EventCount {
	counts := make(map[string]int, len(data.Records))
	for _, rec := range data.Records {
		counts[rec.Event]++
	}

	result := make([]EventCount, 0, len(counts))
	for _, name := range data.Events() {
		result = append(result, EventCount{Event: name, Count: counts[name]})
	}

	return result
}

// MetricSum sums one metric column per event name.
func MetricSum(data *types.Dataset, metric types.Metric) []EventTotal {
	groups := make(map[string][]float64, len(data.Records))
	for _, rec := range data.Records {
		groups[rec.Event] = append(groups[rec.Event], rec.Value(metric))
	}

	result := make([]EventTotal, 0, len(groups))
	for _, name := range data.Events() {
		result = append(result, EventTotal{Event: name, Total: floats.Sum(groups[name])})
	}

	return result
}

// TimeSeries computes the normalized elapsed-time series for the requested
// events and metrics. Empty events selects every distinct event; empty
// metrics selects all four columns. The elapsed column is derived from the
// earliest record's timestamp and divided by the unit divisor; the tick
// boundaries span the total duration, padded up to the next multiple of
// interval when it does not divide evenly.
func TimeSeries(
	data *types.Dataset,
	events []string,
	metrics []types.Metric,
	interval float64,
	unit types.Unit,
) []MetricSeries {
	if data.Len() == 0 {
		return nil
	}

	if len(events) == 0 {
		events = data.Events()
	}

	if len(metrics) == 0 {
		metrics = types.AllMetrics()
	}

	first, last := data.TimeBounds()
	start := timeparse.Parse(first, timeparse.Layout)
	end := timeparse.Parse(last, timeparse.Layout)

	duration := end.Sub(start).Seconds() / unit.Divisor()
	if math.Mod(duration, interval) != 0 {
		duration += interval
	}

	ticks := arange(0, duration, interval)

	computeElapsed(data, start, unit)

	result := make([]MetricSeries, 0, len(metrics))

	for _, metric := range metrics {
		series := MetricSeries{Metric: metric, Unit: unit, Ticks: ticks}

		for _, name := range events {
			var x, y []float64

			for i, rec := range data.Records {
				if rec.Event != name {
					continue
				}

				x = append(x, data.Elapsed[i])
				y = append(y, rec.Value(metric))
			}

			series.Events = append(series.Events, EventSeries{Event: name, X: x, Y: y})
		}

		result = append(result, series)
	}

	return result
}

// computeElapsed populates the dataset's derived time-since-start column.
func computeElapsed(data *types.Dataset, start time.Time, unit types.Unit) {
	data.Elapsed = make([]float64, data.Len())
	for i, rec := range data.Records {
		parsed := timeparse.Parse(rec.Timestamp, timeparse.Layout)
		data.Elapsed[i] = parsed.Sub(start).Seconds() / unit.Divisor()
	}
}

func arange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}

	var result []float64
	for v := start; v < stop; v += step {
		result = append(result, v)
	}

	return result
}
