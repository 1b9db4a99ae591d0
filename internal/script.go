package internal

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go/twiml"
)

const (
	defaultVoice    = "alice"
	defaultGreeting = "Hello! This is an automated call from IVR Call Manager."
)

// DefaultGreeting returns the TwiML sent when a call carries no script
func DefaultGreeting() (string, error) {
	doc, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: defaultGreeting, Voice: defaultVoice},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build default greeting: %w", err)
	}
	return doc, nil
}

// SampleMenuScript returns an editable IVR menu: a greeting, a one-digit
// gather and a goodbye. The gather action is relative and must be served
// by the caller's own webhook.
func SampleMenuScript() (string, error) {
	doc, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: defaultGreeting, Voice: defaultVoice},
		&twiml.VoiceGather{
			NumDigits: "1",
			Action:    "/handle-input",
			Method:    "POST",
			InnerElements: []twiml.Element{
				&twiml.VoiceSay{
					Message: "Press 1 for sales, press 2 for support, press 3 to speak with an operator.",
					Voice:   defaultVoice,
				},
			},
		},
		&twiml.VoiceSay{Message: "Thank you for calling. Goodbye!", Voice: defaultVoice},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build sample script: %w", err)
	}
	return doc, nil
}

// resolveScript returns script unchanged unless it is blank, in which case
// the default greeting is used.
func resolveScript(script string) (string, error) {
	if strings.TrimSpace(script) != "" {
		return script, nil
	}
	return DefaultGreeting()
}
