package render

import (
	"fmt"
	"io"

	"github.com/iksnae/ivr-call/internal"
)

// Formatter renders the values a command shows to the user
type Formatter interface {
	FormatSettings(view internal.SettingsView, w io.Writer) error
	FormatOutcome(outcome internal.CallOutcome, w io.Writer) error
	Name() string
}

// NewFormatter creates a formatter for the named output format
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml", "yml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: text, json, yaml)", format)
	}
}
