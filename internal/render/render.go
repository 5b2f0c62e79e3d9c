// Package render is the chart sink: it turns already-computed series into
// bar and line charts, written as SVG files or handed to the system image
// viewer, one chart per call.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// Options carries the per-chart formatting knobs.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	XRotation float64
	YRotation float64
	FontSizeX float64
	FontSizeY float64

	// ScaleX/ScaleY switch an axis to logarithmic when set to "log",
	// matched case-insensitively. Anything else is linear.
	ScaleX string
	ScaleY string

	Width  int
	Height int

	// Grid draws major grid lines on line charts; XTicks supplies the
	// precomputed major tick boundaries for the time axis.
	Grid   bool
	XTicks []float64

	// FileName overrides the generated <xlabel>_<ylabel>_<timestamp> name.
	FileName string
}

// Series is one named line on a line chart.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Color drawing.Color
}

// Sink writes charts into a directory, or shows them instead when display
// mode is active. The two modes are mutually exclusive per invocation.
type Sink struct {
	dir     string
	display bool
}

// New returns a Sink targeting dir, creating it if absent.
func New(dir string, display bool) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	return &Sink{dir: dir, display: display}, nil
}

// Bar renders one bar chart with one bar per label.
func (s *Sink) Bar(labels []string, values []float64, opts Options) error {
	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		bars = append(bars, chart.Value{Value: v, Label: labels[i]})
	}

	graph := chart.BarChart{
		Title:    opts.Title,
		Width:    width(opts),
		Height:   height(opts),
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 40},
		},
		XAxis: chart.Style{
			FontSize:            fontSize(opts.FontSizeX),
			TextRotationDegrees: opts.XRotation,
		},
		YAxis: chart.YAxis{
			Name: opts.YLabel,
			Style: chart.Style{
				FontSize:            fontSize(opts.FontSizeY),
				TextRotationDegrees: opts.YRotation,
			},
			Range: yRange(opts.ScaleY),
		},
		Bars: bars,
	}

	return s.write(opts, func(provider chart.RendererProvider, w io.Writer) error {
		return graph.Render(provider, w)
	})
}

// Lines renders one line chart with one stroke per series. A legend is drawn
// whenever more than one series is present.
func (s *Sink) Lines(series []Series, opts Options) error {
	strokes := make([]chart.Series, 0, len(series))
	for _, sr := range series {
		strokes = append(strokes, chart.ContinuousSeries{
			Name:    sr.Name,
			XValues: sr.X,
			YValues: sr.Y,
			Style: chart.Style{
				StrokeColor: sr.Color,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  width(opts),
		Height: height(opts),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 40},
		},
		XAxis: xAxis(opts),
		YAxis: chart.YAxis{
			Name: opts.YLabel,
			Style: chart.Style{
				FontSize:            fontSize(opts.FontSizeY),
				TextRotationDegrees: opts.YRotation,
			},
			Range: yRange(opts.ScaleY),
		},
		Series: strokes,
	}

	if len(series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	return s.write(opts, func(provider chart.RendererProvider, w io.Writer) error {
		return graph.Render(provider, w)
	})
}

func xAxis(opts Options) chart.XAxis {
	axis := chart.XAxis{
		Name: opts.XLabel,
		Style: chart.Style{
			FontSize:            fontSize(opts.FontSizeX),
			TextRotationDegrees: opts.XRotation,
		},
	}

	if strings.EqualFold(opts.ScaleX, "log") {
		axis.Range = &chart.LogarithmicRange{}

		return axis
	}

	if len(opts.XTicks) > 0 {
		ticks := make([]chart.Tick, 0, len(opts.XTicks))
		for _, v := range opts.XTicks {
			ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
		}

		axis.Ticks = ticks
		axis.Range = &chart.ContinuousRange{
			Min: floats.Min(opts.XTicks),
			Max: floats.Max(opts.XTicks),
		}
	}

	if opts.Grid {
		axis.GridMajorStyle = chart.Style{
			StrokeColor: chart.ColorAlternateGray,
			StrokeWidth: 1,
		}
	}

	return axis
}

func yRange(scale string) chart.Range {
	if strings.EqualFold(scale, "log") {
		return &chart.LogarithmicRange{}
	}

	return nil
}

func width(opts Options) int {
	if opts.Width > 0 {
		return opts.Width
	}

	return defaultWidth
}

func height(opts Options) int {
	if opts.Height > 0 {
		return opts.Height
	}

	return defaultHeight
}

func fontSize(size float64) float64 {
	if size > 0 {
		return size
	}

	return 10
}

func (s *Sink) write(opts Options, renderFn func(chart.RendererProvider, io.Writer) error) error {
	name := opts.FileName
	if name == "" {
		name = FileName(opts.XLabel, opts.YLabel)
	}

	if s.display {
		return s.show(name, renderFn)
	}

	path := filepath.Join(s.dir, sanitize(name)+".svg")

	file, err := os.Create(path) //nolint:gosec // chart file inside the configured image directory
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer file.Close()

	if err := renderFn(chart.SVG, file); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	slog.Info("chart written", "path", path)

	return nil
}

// FileName builds the default chart file name from the non-empty axis labels
// plus a timestamp, spaces replaced with underscores.
func FileName(xlabel, ylabel string) string {
	name := ""
	if xlabel != "" {
		name += strings.ReplaceAll(xlabel, " ", "_") + "_"
	}

	if ylabel != "" {
		name += strings.ReplaceAll(ylabel, " ", "_") + "_"
	}

	return name + Stamp()
}

// Stamp returns the timestamp suffix appended to chart file names.
func Stamp() string {
	return time.Now().Format("2006-01-02_15:04:05.000000")
}

func sanitize(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
