// Package json is the JSON codec used for option records and command output.
//
// It is backed by [sonic] with the standard library compatible config.
// sonic itself falls back to encoding/json on platforms its JIT does not
// support.
package json

import "io"

// Encoder is a streaming JSON encoder.
type Encoder interface {
	Encode(v any) error
	SetIndent(prefix, indent string)
	SetEscapeHTML(on bool)
}

// NewEncoder creates a streaming encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return newEncoder(w)
}
