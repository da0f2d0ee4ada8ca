package masking

import (
	"encoding/json"
	"strings"
)

// MaskedFieldValue is the replacement for masked JSON field values. Kept
// short so the regex sweep that follows the structural pass never matches
// it as a credential and re-mangles the output.
const MaskedFieldValue = "***"

// sensitiveFieldNames are JSON object keys whose values are always masked,
// matched case-insensitively with separators stripped ("api_key", "Api-Key",
// and "apikey" are the same name).
var sensitiveFieldNames = map[string]struct{}{
	"password":      {},
	"passwd":        {},
	"secret":        {},
	"token":         {},
	"accesstoken":   {},
	"refreshtoken":  {},
	"idtoken":       {},
	"apikey":        {},
	"apisecret":     {},
	"clientsecret":  {},
	"privatekey":    {},
	"secretkey":     {},
	"sessionkey":    {},
	"authorization": {},
	"credential":    {},
	"credentials":   {},
}

// fieldMarkers is the fast pre-check: a body without any of these substrings
// cannot contain a sensitive field name, so parsing is skipped.
var fieldMarkers = []string{"pass", "secret", "token", "key", "credential", "authorization"}

// JSONFieldMasker masks values of sensitive-named fields in JSON bodies
// while leaving everything else untouched. It walks nested objects and
// arrays, so a token three levels deep is caught the same as a top-level
// one.
type JSONFieldMasker struct{}

func (m *JSONFieldMasker) Name() string { return "json_fields" }

// AppliesTo probes for JSON shape and a sensitive field marker before
// committing to a parse.
func (m *JSONFieldMasker) AppliesTo(data string) bool {
	trimmed := strings.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	lower := strings.ToLower(data)
	for _, marker := range fieldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Mask parses the body and overwrites values under sensitive field names.
// Anything that fails to parse comes back unchanged; truncated body
// excerpts routinely do, and the regex sweep still covers those.
func (m *JSONFieldMasker) Mask(data string) string {
	var doc any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return data
	}

	if !maskValue(doc) {
		return data
	}

	masked, err := json.Marshal(doc)
	if err != nil {
		return data
	}

	// Keep the original's trailing newline.
	output := string(masked)
	if strings.HasSuffix(data, "\n") {
		output += "\n"
	}

	return output
}

// maskValue walks a decoded JSON value in place. Returns true if anything
// was masked.
func maskValue(v any) bool {
	switch val := v.(type) {
	case map[string]any:
		return maskObject(val)
	case []any:
		anyMasked := false
		for _, item := range val {
			if maskValue(item) {
				anyMasked = true
			}
		}
		return anyMasked
	default:
		return false
	}
}

func maskObject(obj map[string]any) bool {
	anyMasked := false
	for key, val := range obj {
		if isSensitiveField(key) {
			switch val.(type) {
			case string, float64, bool, json.Number:
				obj[key] = MaskedFieldValue
				anyMasked = true
				continue
			}
			// Sensitive-named containers get their leaves masked below.
		}
		if maskValue(val) {
			anyMasked = true
		}
	}
	return anyMasked
}

// isSensitiveField normalizes a key (lowercase, separators stripped) and
// checks it against the sensitive name set. A one-level prefix like
// "x-api-key" → "xapikey" also matches via suffix check.
func isSensitiveField(key string) bool {
	normalized := strings.ToLower(key)
	normalized = strings.NewReplacer("-", "", "_", "", ".", "").Replace(normalized)
	if _, ok := sensitiveFieldNames[normalized]; ok {
		return true
	}
	// Vendor-prefixed variants: xapikey, userpassword, oauthtoken.
	for name := range sensitiveFieldNames {
		if strings.HasSuffix(normalized, name) {
			return true
		}
	}
	return false
}
