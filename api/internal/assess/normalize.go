package assess

import (
	"encoding/json"

	"content-assessor/api/internal/assess/types"
	"content-assessor/api/internal/util"
)

// NormalizeVerdict turns raw model text into a Verdict. It never fails:
// text that is not a JSON object reads as {}, isValid is true only for a
// JSON true, and reason is kept only when it is a string. Unknown fields
// are dropped.
func NormalizeVerdict(raw string) types.Verdict {
	var m map[string]any
	if err := json.Unmarshal([]byte(util.StripCodeFences(raw)), &m); err != nil || m == nil {
		m = map[string]any{}
	}

	var v types.Verdict
	if b, ok := m["isValid"].(bool); ok {
		v.IsValid = b
	}
	if s, ok := m["reason"].(string); ok {
		v.Reason = s
	}
	return v
}
