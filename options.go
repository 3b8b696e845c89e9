package toregexp

import (
	"errors"
	"fmt"
	"strings"

	"go.dw1.io/toregexp/cast"
	"go.dw1.io/toregexp/json"
	"go.dw1.io/toregexp/regexp"
)

// ErrInvalidOptions is returned when an option record does not have the
// shape of [Options].
var ErrInvalidOptions = errors.New("toregexp: invalid options")

// Options configures a conversion. The zero value only converts delimited
// patterns.
type Options struct {
	// Literal treats the whole input as text: metacharacters are escaped and
	// a pattern is always produced.
	Literal bool
	// Detect treats the input as a pattern when it carries recognized
	// delimiters and as literal text otherwise.
	Detect bool
	// IgnoreCase is the "i" option.
	IgnoreCase bool
	// Multiline is the "m" option; "." matches line breaks.
	Multiline bool
	// Extended is the "x" option; whitespace and comments are ignored.
	Extended bool
}

// Flags returns the pattern flags enabled by o.
func (o Options) Flags() Flags {
	var f Flags
	if o.IgnoreCase {
		f |= regexp.IgnoreCase
	}
	if o.Multiline {
		f |= regexp.Multiline
	}
	if o.Extended {
		f |= regexp.Extended
	}

	return f
}

// withInline turns on the options named by inline option letters. Inline
// options never turn an option off.
func (o Options) withInline(letters string) Options {
	f := regexp.ParseFlags(letters)
	o.IgnoreCase = o.IgnoreCase || f.Has(regexp.IgnoreCase)
	o.Multiline = o.Multiline || f.Has(regexp.Multiline)
	o.Extended = o.Extended || f.Has(regexp.Extended)

	return o
}

// bits packs o into a small integer, used to seed cache keys.
func (o Options) bits() uint64 {
	b := uint64(o.Flags())
	if o.Literal {
		b |= 1 << 8
	}
	if o.Detect {
		b |= 1 << 9
	}

	return b
}

// OptionsFrom builds Options from a loosely typed record. It accepts nil,
// Options, *Options and string-keyed maps. Keys are matched ignoring case,
// '_' and '-', so "ignore_case", "ignoreCase" and "IGNORE-CASE" are the same
// option. Unknown keys are ignored. Values are converted with [cast.Bool].
//
// Any other shape, a value that is not a boolean, or two spellings of one
// option with different values yields an error wrapping [ErrInvalidOptions].
func OptionsFrom(v any) (Options, error) {
	switch o := v.(type) {
	case nil:
		return Options{}, nil
	case Options:
		return o, nil
	case *Options:
		if o == nil {
			return Options{}, nil
		}
		return *o, nil
	case string, []byte:
		// A bare string is not a record, even when it happens to hold JSON.
		return Options{}, fmt.Errorf("%w: got %T", ErrInvalidOptions, v)
	}

	m, err := cast.StringMap(v)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	var opts Options
	seen := make(map[string]string, len(m))
	for key, val := range m {
		name := normalizeKey(key)

		var dst *bool
		switch name {
		case "literal":
			dst = &opts.Literal
		case "detect":
			dst = &opts.Detect
		case "ignorecase":
			dst = &opts.IgnoreCase
		case "multiline":
			dst = &opts.Multiline
		case "extended":
			dst = &opts.Extended
		default:
			continue
		}

		b, err := cast.Bool(val)
		if err != nil {
			return Options{}, fmt.Errorf("%w: option %q: %w", ErrInvalidOptions, key, err)
		}
		if prev, ok := seen[name]; ok && *dst != b {
			return Options{}, fmt.Errorf("%w: options %q and %q disagree", ErrInvalidOptions, prev, key)
		}
		seen[name] = key
		*dst = b
	}

	return opts, nil
}

// ParseOptions decodes a JSON object into Options with the same rules as
// [OptionsFrom]. An empty payload yields the zero Options.
func ParseOptions(data []byte) (Options, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Options{}, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return OptionsFrom(raw)
}

var keySeparators = strings.NewReplacer("_", "", "-", "")

func normalizeKey(key string) string {
	return keySeparators.Replace(strings.ToLower(key))
}
