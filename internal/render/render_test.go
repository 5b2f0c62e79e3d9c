package render_test

import (
	"os"
	"strings"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/evlog/evlog/internal/render"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	got := render.FileName("Time in seconds", "Execution time (seconds)")

	if !strings.HasPrefix(got, "Time_in_seconds_Execution_time_(seconds)_") {
		t.Fatalf("FileName = %q", got)
	}

	// The suffix is a 2006-01-02_15:04:05.000000 timestamp.
	stamp := strings.TrimPrefix(got, "Time_in_seconds_Execution_time_(seconds)_")
	if len(stamp) != len("2006-01-02_15:04:05.000000") {
		t.Errorf("timestamp suffix = %q", stamp)
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	if got := render.Color("b"); got != chart.ColorBlue {
		t.Errorf("Color(b) = %v", got)
	}

	if got := render.Color("K"); got != chart.ColorBlack {
		t.Errorf("Color(K) = %v", got)
	}

	if got := render.Color("unknown"); got != chart.ColorBlack {
		t.Errorf("Color(unknown) = %v", got)
	}
}

func TestRankColorsDistinct(t *testing.T) {
	t.Parallel()

	first := render.RankColor(0, 4)
	last := render.RankColor(3, 4)

	if first == last {
		t.Fatalf("rank colors should differ across the map, got %v twice", first)
	}
}

func TestBarWritesChart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sink, err := render.New(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	opts := render.Options{
		Title:  "Event frequency plot",
		XLabel: "Event name",
		YLabel: "Frequency",
	}

	if err := sink.Bar([]string{"map", "collect"}, []float64{3, 1}, opts); err != nil {
		t.Fatal(err)
	}

	assertOneChart(t, dir, "Event_name_Frequency_")
}

func TestLinesWritesChart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sink, err := render.New(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	series := []render.Series{
		{
			Name:  "map",
			X:     []float64{0, 10, 20},
			Y:     []float64{1, 3, 2},
			Color: render.RankColor(0, 2),
		},
		{
			Name:  "collect",
			X:     []float64{0, 10, 20},
			Y:     []float64{2, 1, 4},
			Color: render.RankColor(1, 2),
		},
	}

	opts := render.Options{
		Title:  "Event execution time plot",
		XLabel: "Time in seconds",
		YLabel: "Execution time (seconds)",
		Grid:   true,
		XTicks: []float64{0, 10, 20, 30},
	}

	if err := sink.Lines(series, opts); err != nil {
		t.Fatal(err)
	}

	assertOneChart(t, dir, "Time_in_seconds_Execution_time_(seconds)_")
}

func TestFileNameOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sink, err := render.New(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	opts := render.Options{
		XLabel:   "Event name",
		YLabel:   "Frequency",
		FileName: "custom name",
	}

	if err := sink.Bar([]string{"map", "collect"}, []float64{2, 1}, opts); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(dir + "/custom_name.svg"); err != nil {
		t.Fatalf("expected custom_name.svg: %v", err)
	}
}

func assertOneChart(t *testing.T, dir, prefix string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("got %d files, want 1", len(entries))
	}

	name := entries[0].Name()
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".svg") {
		t.Fatalf("chart file = %q, want prefix %q and .svg suffix", name, prefix)
	}
}
