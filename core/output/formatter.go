// Package output provides output formatting.
// This package produces human and machine-readable renderings of a
// calculation result; it performs no cost logic.
package output

import (
	"io"
	"sync"

	"databricks-cost/core/types"
	"databricks-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Result contains the complete calculation output
type Result struct {
	// Breakdowns are the per-workload cost records
	Breakdowns []types.Breakdown `json:"breakdowns"`

	// Totals are the aggregated grand totals
	Totals types.Totals `json:"totals"`

	// Currency is the display currency
	Currency types.Currency `json:"currency"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the calculation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the calculation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// Warnings collects all breakdown warnings in input order
func (r *Result) Warnings() []string {
	var out []string
	for _, b := range r.Breakdowns {
		out = append(out, b.Warnings...)
	}
	return out
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

var (
	registryMu sync.RWMutex
	registry   = make(map[Format]Formatter)
)

// Register adds a formatter to the registry
func Register(f Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[f.Format()] = f
}

// Get returns the formatter for a format
func Get(format Format) (Formatter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[format]
	if !ok {
		return nil, errors.NotFound("output format", string(format))
	}
	return f, nil
}
