package timeparse_test

import (
	"testing"
	"time"

	"github.com/evlog/evlog/internal/timeparse"
)

func TestParseValid(t *testing.T) {
	t.Parallel()

	got := timeparse.Parse("2016-07-12T09:15:30.250000Z", timeparse.Layout)

	want := time.Date(2016, 7, 12, 9, 15, 30, 250000000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse returned %v, want %v", got, want)
	}
}

func TestParseFallsBackToNow(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "not-a-timestamp", "2016-13-99T99:99:99Z"} {
		before := time.Now()
		got := timeparse.Parse(text, timeparse.Layout)
		after := time.Now()

		if got.Before(before) || got.After(after) {
			t.Errorf("Parse(%q) = %v, expected a current-time fallback", text, got)
		}
	}
}

func TestParseDateLayout(t *testing.T) {
	t.Parallel()

	got := timeparse.Parse("07-12-2016", timeparse.DateLayout)

	want := time.Date(2016, 7, 12, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse returned %v, want %v", got, want)
	}
}
