package models

// ErrorKind classifies failures across the pipeline. Kinds are carried on
// step results, journal events, and terminal run records.
type ErrorKind string

const (
	ErrKindSpecFetch             ErrorKind = "SPEC_FETCH"
	ErrKindSpecInvalid           ErrorKind = "SPEC_INVALID"
	ErrKindAISchema              ErrorKind = "AI_SCHEMA"
	ErrKindAIAlignment           ErrorKind = "AI_ALIGNMENT"
	ErrKindAIPlaceholder         ErrorKind = "AI_PLACEHOLDER"
	ErrKindAIShape               ErrorKind = "AI_SHAPE"
	ErrKindAIProvider            ErrorKind = "AI_PROVIDER"
	ErrKindNetwork               ErrorKind = "NETWORK"
	ErrKindTimeout               ErrorKind = "TIMEOUT"
	ErrKindSSRFBlocked           ErrorKind = "SSRF_BLOCKED"
	ErrKindPlaceholderUnresolved ErrorKind = "PLACEHOLDER_UNRESOLVED"
	ErrKindExtractionMissing     ErrorKind = "EXTRACTION_MISSING"
	ErrKindAssertion             ErrorKind = "ASSERTION"
	ErrKindCancelled             ErrorKind = "CANCELLED"
	ErrKindOverloaded            ErrorKind = "OVERLOADED"
	ErrKindInternal              ErrorKind = "INTERNAL"
)

// KindPtr returns a pointer to k, for optional fields.
func KindPtr(k ErrorKind) *ErrorKind { return &k }
