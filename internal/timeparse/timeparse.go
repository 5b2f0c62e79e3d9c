// Package timeparse parses record timestamps with deliberate leniency: a
// value that cannot be parsed resolves to the current time instead of
// failing, so a malformed timestamp never aborts a report run.
package timeparse

import "time"

// Layout matches the timestamp pattern emitted by the runtime,
// e.g. 2018-08-15T09:12:45.123456Z.
const Layout = "2006-01-02T15:04:05.999999Z"

// DateLayout matches the mm-dd-yyyy dates accepted on the command line.
const DateLayout = "01-02-2006"

// TokenLayout is the date form embedded in log filenames.
const TokenLayout = "2006-01-02"

// Parse parses text against layout. Empty or unparseable input falls back to
// the current time; the fallback is intentional graceful degradation and the
// only contract callers may rely on is "always a usable time, never an error".
func Parse(text, layout string) time.Time {
	if text == "" {
		return time.Now()
	}

	parsed, err := time.Parse(layout, text)
	if err != nil {
		return time.Now()
	}

	return parsed
}
