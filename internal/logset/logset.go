// Package logset selects log files from a directory by filename convention.
// Filenames encode RUNTIME_LOCALITY_DATE... tokens; selection is plain
// substring containment, no grammar is enforced.
package logset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/farcloser/primordium/fault"

	"github.com/evlog/evlog/internal/timeparse"
)

// LocalityUnset disables locality filtering.
const LocalityUnset = -1

// Select lists the regular files in dir and filters them, in precedence order:
//
//  1. A runtime tag, a locality id, or a start date without an end date:
//     keep files containing UPPER(runtime)_ + locality_ + startDate (each part
//     only if present) as a substring.
//  2. Both a start and an end date: keep files containing the runtime/locality
//     prefix followed by any calendar day in [start, end), end exclusive.
//  3. No filters: keep everything.
//
// Note that a runtime tag or locality id takes the first branch even when a
// full date range is supplied; the range is then ignored. An empty selection
// is not an error.
func Select(dir, runtime string, locality int, start, end time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", fault.ErrReadFailure, dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}

	var selected []string

	switch {
	case runtime != "" || locality >= 0 || (!start.IsZero() && end.IsZero()):
		token := filterPrefix(runtime, locality)
		if !start.IsZero() && end.IsZero() {
			token += start.Format(timeparse.TokenLayout)
		}

		for _, name := range names {
			if strings.Contains(name, token) {
				selected = append(selected, filepath.Join(dir, name))
			}
		}

	case !start.IsZero() && !end.IsZero():
		prefix := filterPrefix(runtime, locality)

		for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
			token := prefix + day.Format(timeparse.TokenLayout)

			for _, name := range names {
				if strings.Contains(name, token) {
					selected = append(selected, filepath.Join(dir, name))
				}
			}
		}

	default:
		for _, name := range names {
			selected = append(selected, filepath.Join(dir, name))
		}
	}

	return selected, nil
}

func filterPrefix(runtime string, locality int) string {
	prefix := ""
	if runtime != "" {
		prefix = strings.ToUpper(runtime) + "_"
	}

	if locality >= 0 {
		prefix += strconv.Itoa(locality) + "_"
	}

	return prefix
}
