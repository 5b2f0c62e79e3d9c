// Package viewer hands rendered chart images to the platform image viewer.
package viewer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/farcloser/primordium/fault"
)

func name() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}

	return "xdg-open"
}

// Open launches the system image viewer on path without waiting for it to
// exit. The viewer owns the file from here on; the caller must not delete it.
func Open(path string) error {
	viewerName := name()

	viewerPath, err := exec.LookPath(viewerName)
	if err != nil {
		return fmt.Errorf("%w: %s", fault.ErrMissingRequirements, viewerName)
	}

	slog.Debug("viewer.Open", "viewer", viewerPath, "path", path)

	cmd := exec.Command(viewerPath, path) //nolint:gosec // path is a chart file this process just wrote

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", fault.ErrCommandFailure, viewerName, err)
	}

	return nil
}
