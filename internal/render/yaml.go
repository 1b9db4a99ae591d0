package render

import (
	"io"

	"github.com/iksnae/ivr-call/internal"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders values as YAML
type YAMLFormatter struct{}

// FormatSettings renders the masked settings view
func (f *YAMLFormatter) FormatSettings(view internal.SettingsView, w io.Writer) error {
	return encodeYAML(view, w)
}

// FormatOutcome renders a call outcome
func (f *YAMLFormatter) FormatOutcome(outcome internal.CallOutcome, w io.Writer) error {
	return encodeYAML(outcome, w)
}

// Name returns the format name
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

func encodeYAML(v interface{}, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(v)
}
