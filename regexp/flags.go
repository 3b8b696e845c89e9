package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags is a bitmask of pattern modifiers. The bit values are the ones
// native pattern literals use, so /foo/mix has Flags(7).
type Flags uint8

const (
	// IgnoreCase matches letters regardless of case (inline option "i").
	IgnoreCase Flags = 1 << iota
	// Extended ignores unescaped whitespace and #-comments in the pattern
	// (inline option "x").
	Extended
	// Multiline lets "." match line breaks (inline option "m").
	Multiline
)

const allFlags = IgnoreCase | Extended | Multiline

// Has reports whether every bit of o is set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// String returns the inline option letters for f in canonical "mix" order.
// Unknown bits are not rendered.
func (f Flags) String() string {
	var b strings.Builder
	if f.Has(Multiline) {
		b.WriteByte('m')
	}
	if f.Has(IgnoreCase) {
		b.WriteByte('i')
	}
	if f.Has(Extended) {
		b.WriteByte('x')
	}

	return b.String()
}

// ParseFlags converts inline option letters into Flags. Letters other than
// i, m and x are ignored.
func ParseFlags(letters string) Flags {
	var f Flags
	for i := 0; i < len(letters); i++ {
		switch letters[i] {
		case 'i':
			f |= IgnoreCase
		case 'm':
			f |= Multiline
		case 'x':
			f |= Extended
		}
	}

	return f
}

// groupFlags returns the flag letters of an inline group that turns on the
// options in f and turns off the rest, e.g. "i-sx". Multiline is spelled "s",
// its name in both engines.
func (f Flags) groupFlags() string {
	var on, off strings.Builder
	for _, fl := range []struct {
		flag   Flags
		letter byte
	}{
		{IgnoreCase, 'i'},
		{Multiline, 's'},
		{Extended, 'x'},
	} {
		if f.Has(fl.flag) {
			on.WriteByte(fl.letter)
		} else {
			off.WriteByte(fl.letter)
		}
	}

	if off.Len() == 0 {
		return on.String()
	}
	return on.String() + "-" + off.String()
}

// pcreOptions maps f onto regexp2 options.
func (f Flags) pcreOptions() regexp2.RegexOptions {
	opts := regexp2.None
	if f.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(Multiline) {
		opts |= regexp2.Singleline
	}
	if f.Has(Extended) {
		opts |= regexp2.IgnorePatternWhitespace
	}

	return opts
}
