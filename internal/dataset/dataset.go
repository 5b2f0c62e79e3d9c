// Package dataset loads a merged JSON array artifact into a Dataset.
package dataset

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/fault"
	"github.com/valyala/fastjson"

	"github.com/evlog/evlog/internal/types"
)

// Build parses the merged artifact at path into a Dataset. There is no
// partial recovery: a structural parse failure means no report can be
// generated for the current selection and is surfaced to the caller.
func Build(path string) (*types.Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // artifact path is derived from the configured log directory
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, path, err)
	}

	var parser fastjson.Parser

	value, err := parser.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrInvalidJSON, path, err)
	}

	rows, err := value.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: expected a top-level array: %w", fault.ErrInvalidJSON, path, err)
	}

	result := &types.Dataset{
		Records: make([]types.LogRecord, 0, len(rows)),
	}

	for _, row := range rows {
		result.Records = append(result.Records, types.LogRecord{
			Event:      string(row.GetStringBytes("EN")),
			Timestamp:  string(row.GetStringBytes("TS")),
			ExecTime:   row.GetFloat64("ET"),
			InputSize:  row.GetFloat64("IS"),
			OutputSize: row.GetFloat64("OS"),
			LoopCount:  row.GetFloat64("LI"),
		})
	}

	return result, nil
}
