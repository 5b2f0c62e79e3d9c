// Package merge concatenates selected log files into one JSON array artifact.
//
// The runtime emits one JSON object fragment per line, each line already
// carrying its separating comma. The merge reads the concatenated line stream
// twice: the first pass counts lines, the second rewrites them into the
// artifact. Every line that does not already end with a comma has its
// trailing byte stripped (dropping the line terminator); the very last line
// additionally has its trailing byte replaced with the closing bracket. The
// artifact is prefixed with an opening bracket before any content is written.
//
// Lines that violate the emitter's format (no trailing comma before more
// content) produce a malformed artifact on purpose; validation happens when
// the dataset is built, not here.
package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/farcloser/primordium/fault"
)

// Merge rewrites the given files into a single JSON array at outPath. Any
// pre-existing artifact is removed first; merges are never incremental.
func Merge(paths []string, outPath string) error {
	if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale artifact: %w", err)
	}

	total, err := countLines(paths)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath) //nolint:gosec // artifact path is derived from the configured log directory
	if err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)

	if _, err = writer.WriteString("["); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	lineNo := 0

	for _, path := range paths {
		err = eachLine(path, func(line string) error {
			lineNo++

			if !hasSuffix(line, ',') {
				line = trimLast(line)
			}

			if lineNo == total {
				line = trimLast(line) + "]"
			}

			_, werr := writer.WriteString(line)

			return werr
		})
		if err != nil {
			return err
		}
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	return nil
}

func countLines(paths []string) (int, error) {
	total := 0

	for _, path := range paths {
		err := eachLine(path, func(string) error {
			total++

			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// eachLine yields every line of the file including its terminator. A final
// line without a terminator is yielded as-is; line boundaries never span
// files.
func eachLine(path string, yield func(string) error) error {
	file, err := os.Open(path) //nolint:gosec // selected log files come from the configured log directory
	if err != nil {
		return fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if yerr := yield(line); yerr != nil {
				return fmt.Errorf("writing artifact: %w", yerr)
			}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, path, err)
		}
	}
}

func hasSuffix(s string, b byte) bool {
	return len(s) > 0 && s[len(s)-1] == b
}

func trimLast(s string) string {
	if s == "" {
		return s
	}

	return s[:len(s)-1]
}
