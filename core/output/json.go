// Package output - JSON output
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders a result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render produces the JSON output
func (f *JSONFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	Register(&JSONFormatter{})
}
