package request

import (
	"bytes"
	"encoding/json"
)

// Text is a form field stored as text. JSON strings are taken as is and
// numbers keep their literal form, so a phone posted as 9876543210 is
// stored as "9876543210". Other JSON values decode as empty.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = Text(jsonText(b))
	return nil
}

func (t *Text) ptr() *string {
	if t == nil {
		return nil
	}

	s := string(*t)

	return &s
}

func jsonText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw)
	default:
		return ""
	}
}
