package llm

import (
	"encoding/json"
	"regexp"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// DecodeObject parses a model reply into a JSON object using a fixed
// fallback chain: strict parse, then the first {...} substring, then an
// empty map. The chain order is a contract; downstream null-safety
// depends on it. It never fails.
func DecodeObject(raw string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err == nil && out != nil {
		return out
	}
	if m := jsonObjectRe.FindString(raw); m != "" {
		var sub map[string]any
		if err := json.Unmarshal([]byte(m), &sub); err == nil && sub != nil {
			return sub
		}
	}
	return map[string]any{}
}
