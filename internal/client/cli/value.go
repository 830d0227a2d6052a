package cli

import (
	"encoding/json"
	"strings"
)

// ParseValue turns user input into a JSON value. Input that already is a
// JSON number, array, object, quoted string, true, false or null is sent
// as is; anything else is sent as a plain string.
func ParseValue(text string) json.RawMessage {
	t := strings.TrimSpace(text)
	if t != "" && json.Valid([]byte(t)) {
		return json.RawMessage(t)
	}
	b, _ := json.Marshal(text)
	return b
}
