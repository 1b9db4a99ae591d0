package render

import (
	"fmt"
	"io"

	"github.com/iksnae/ivr-call/internal"
)

// TextFormatter renders values as aligned key/value lines
type TextFormatter struct{}

// FormatSettings renders the masked settings view
func (f *TextFormatter) FormatSettings(view internal.SettingsView, w io.Writer) error {
	exists := "yes"
	if !view.Exists {
		exists = "no (defaults)"
	}
	complete := "yes"
	if !view.Complete {
		complete = "no"
	}

	rows := [][2]string{
		{"Settings file", view.Path},
		{"Exists", exists},
		{"Account SID", orUnset(view.AccountSID)},
		{"Auth token", orUnset(view.AuthToken)},
		{"Phone number", orUnset(view.PhoneNumber)},
		{"Complete", complete},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

// FormatOutcome renders a call outcome
func (f *TextFormatter) FormatOutcome(outcome internal.CallOutcome, w io.Writer) error {
	_, err := fmt.Fprintln(w, outcome.Message())
	return err
}

// Name returns the format name
func (f *TextFormatter) Name() string {
	return "text"
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
