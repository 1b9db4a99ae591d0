package render

import (
	"encoding/json"
	"io"

	"github.com/iksnae/ivr-call/internal"
)

// JSONFormatter renders values as pretty-printed JSON
type JSONFormatter struct{}

// FormatSettings renders the masked settings view
func (f *JSONFormatter) FormatSettings(view internal.SettingsView, w io.Writer) error {
	return encodeJSON(view, w)
}

// FormatOutcome renders a call outcome
func (f *JSONFormatter) FormatOutcome(outcome internal.CallOutcome, w io.Writer) error {
	return encodeJSON(outcome, w)
}

// Name returns the format name
func (f *JSONFormatter) Name() string {
	return "json"
}

func encodeJSON(v interface{}, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
