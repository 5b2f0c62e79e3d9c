package logset_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/evlog/evlog/internal/logset"
)

func writeLogs(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{},\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func baseNames(paths []string) []string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}

	slices.Sort(names)

	return names
}

func TestSelectAll(t *testing.T) {
	t.Parallel()

	dir := writeLogs(t, "GMT_1_2016-07-12.log", "JVM_2_2016-07-13.log")

	got, err := logset.Select(dir, "", logset.LocalityUnset, time.Time{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("selected %d files, want 2", len(got))
	}
}

func TestSelectRuntimeLocalityDate(t *testing.T) {
	t.Parallel()

	dir := writeLogs(t,
		"GMT_2_2016-07-12.log",
		"GMT_2_2016-07-13.log",
		"GMT_3_2016-07-12.log",
		"JVM_2_2016-07-12.log",
	)

	date := time.Date(2016, 7, 12, 0, 0, 0, 0, time.UTC)

	got, err := logset.Select(dir, "gmt", 2, date, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"GMT_2_2016-07-12.log"}
	if !slices.Equal(baseNames(got), want) {
		t.Fatalf("selected %v, want %v", baseNames(got), want)
	}
}

func TestSelectRuntimeOnly(t *testing.T) {
	t.Parallel()

	dir := writeLogs(t,
		"GMT_2_2016-07-12.log",
		"GMT_3_2016-07-13.log",
		"JVM_2_2016-07-12.log",
	)

	got, err := logset.Select(dir, "GMT", logset.LocalityUnset, time.Time{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"GMT_2_2016-07-12.log", "GMT_3_2016-07-13.log"}
	if !slices.Equal(baseNames(got), want) {
		t.Fatalf("selected %v, want %v", baseNames(got), want)
	}
}

func TestSelectDateRangeEndExclusive(t *testing.T) {
	t.Parallel()

	dir := writeLogs(t,
		"GMT_1_2016-07-11.log",
		"GMT_1_2016-07-12.log",
		"GMT_2_2016-07-13.log",
		"GMT_2_2016-07-14.log",
	)

	start := time.Date(2016, 7, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2016, 7, 14, 0, 0, 0, 0, time.UTC)

	got, err := logset.Select(dir, "", logset.LocalityUnset, start, end)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"GMT_1_2016-07-12.log", "GMT_2_2016-07-13.log"}
	if !slices.Equal(baseNames(got), want) {
		t.Fatalf("selected %v, want %v", baseNames(got), want)
	}
}

func TestSelectRuntimeIgnoresRange(t *testing.T) {
	t.Parallel()

	dir := writeLogs(t,
		"GMT_1_2016-07-11.log",
		"GMT_1_2016-07-20.log",
	)

	start := time.Date(2016, 7, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2016, 7, 14, 0, 0, 0, 0, time.UTC)

	got, err := logset.Select(dir, "GMT", logset.LocalityUnset, start, end)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("selected %d files, want 2 (range must be ignored when a runtime is set)", len(got))
	}
}

func TestSelectMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := logset.Select(filepath.Join(t.TempDir(), "absent"), "", logset.LocalityUnset, time.Time{}, time.Time{})
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
