package testutil

// Settings documents as they may appear on disk
const (
	// ValidSettingsJSON is the layout the settings store writes
	ValidSettingsJSON = "{\n" +
		"    \"twilio_account_sid\": \"AC1\",\n" +
		"    \"twilio_auth_token\": \"tok\",\n" +
		"    \"twilio_phone_number\": \"+15551234567\"\n" +
		"}"

	// CorruptSettingsJSON does not parse
	CorruptSettingsJSON = "{not json"

	// WrongTypeSettingsJSON parses but has a non-string value
	WrongTypeSettingsJSON = `{"twilio_account_sid": 42}`

	// ExtraKeySettingsJSON carries a key the store does not know
	ExtraKeySettingsJSON = `{"twilio_account_sid":"AC1","extra":"x"}`

	// MenuScript is a minimal custom call flow
	MenuScript = `<Response><Say>Custom</Say></Response>`
)
