package masking

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex pattern matching. Code-based maskers can parse a
// response body and apply context-sensitive masking (e.g., mask the value
// of a "token" field but not an "id" field).
type Masker interface {
	// Name identifies the masker in config and in redaction audit fields.
	Name() string

	// AppliesTo is a cheap pre-filter, a substring probe rather than a
	// parse, deciding whether Mask should run at all.
	AppliesTo(data string) bool

	// Mask returns the redacted form. On parse or processing failure it
	// must hand back the input unchanged, never an error.
	Mask(data string) string
}
