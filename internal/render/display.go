package render

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/evlog/evlog/internal/integration/viewer"
)

// show renders the chart as a PNG into a temp file and opens it in the
// system image viewer. The file is left behind for the viewer to own.
func (s *Sink) show(name string, renderFn func(chart.RendererProvider, io.Writer) error) error {
	file, err := os.CreateTemp("", sanitize(name)+"-*.png")
	if err != nil {
		return fmt.Errorf("creating display file: %w", err)
	}

	if err = renderFn(chart.PNG, file); err != nil {
		file.Close()

		return fmt.Errorf("rendering chart: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("writing display file: %w", err)
	}

	return viewer.Open(file.Name())
}
