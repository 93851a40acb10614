package model

// Warning describes a non-fatal condition encountered while parsing, such
// as a skipped XML fragment or a stream that yielded no text. Parsers
// return warnings beside their result rather than failing.
type Warning struct {
	// Code is a short stable identifier, e.g. "no-text" or "bad-xml".
	Code string

	// Message is a human-readable description.
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}
