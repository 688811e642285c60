// Package format renders command results for non-interactive runs.
package format

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat represents the output format type for non-interactive mode
type OutputFormat string

const (
	// Text prints each result as-is.
	Text OutputFormat = "text"

	// JSON prints one object per executed command line.
	JSON OutputFormat = "json"
)

// String returns the string representation of the OutputFormat
func (f OutputFormat) String() string {
	return string(f)
}

// SupportedFormats is a list of all supported output formats as strings
var SupportedFormats = []string{
	string(Text),
	string(JSON),
}

// Parse converts a string to an OutputFormat
func Parse(s string) (OutputFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case string(Text):
		return Text, nil
	case string(JSON):
		return JSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s", s)
	}
}

// IsValid checks if the provided format string is supported
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// GetHelpText returns a formatted string describing all supported formats
func GetHelpText() string {
	return fmt.Sprintf(`Supported output formats:
- %s: Plain text output (default)
- %s: Each result wrapped in a JSON object`,
		Text, JSON)
}

// Result is the outcome of one command line.
type Result struct {
	Command  string `json:"command"`
	Response string `json:"response"`
}

// FormatOutput renders r in the given format. Unknown formats fall back to
// text.
func FormatOutput(r Result, formatStr string) (string, error) {
	format, err := Parse(formatStr)
	if err != nil {
		format = Text
	}

	switch format {
	case JSON:
		return formatAsJSON(r)
	case Text:
		fallthrough
	default:
		return r.Response, nil
	}
}

func formatAsJSON(r Result) (string, error) {
	jsonBytes, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal output into JSON: %w", err)
	}

	return string(jsonBytes), nil
}
