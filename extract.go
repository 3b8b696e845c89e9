package toregexp

import (
	"strings"

	"go.dw1.io/toregexp/regexp"
)

// Flags is the pattern flag bitmask. See [regexp.Flags].
type Flags = regexp.Flags

// Flag bits, re-exported from package regexp.
const (
	IgnoreCase = regexp.IgnoreCase
	Extended   = regexp.Extended
	Multiline  = regexp.Multiline
)

// inlineOptions are the option letters accepted after a closing delimiter.
// Only i, m and x change the result.
const inlineOptions = "imxnesu"

type delimiter struct {
	start, end string
}

// delimiters in priority order.
var delimiters = []delimiter{
	{start: "%r{", end: "}"},
	{start: "/", end: "/"},
}

// closes reports whether s ends with d's end token followed by inline
// options only.
func (d delimiter) closes(s string) bool {
	return strings.HasSuffix(strings.TrimRight(s, inlineOptions), d.end)
}

// split returns the body and inline options of s, which starts with d's
// start token. The body runs to the last end token that is followed by
// inline options only.
func (d delimiter) split(s string) (body, letters string, ok bool) {
	rest := s[len(d.start):]
	head := strings.TrimRight(rest, inlineOptions)
	if !strings.HasSuffix(head, d.end) {
		return "", "", false
	}

	return head[:len(head)-len(d.end)], rest[len(head):], true
}

// Args is a pattern body and its flags, ready to be compiled.
type Args struct {
	Content string `json:"content"`
	Flags   Flags  `json:"flags"`
}

// Compile compiles a into a pattern. Errors from the engine are returned
// unchanged.
func (a Args) Compile() (*regexp.Regexp, error) {
	return regexp.CompileFlags(a.Content, a.Flags)
}

// String renders a in the canonical "/content/flags" form.
func (a Args) String() string {
	return regexp.FormatLiteral(a.Content, a.Flags)
}

// IsLiteral reports whether s is plain text, i.e. it does not start with a
// known opening delimiter while ending with the matching closing delimiter
// and optional inline options.
func IsLiteral(s string) bool {
	for _, d := range delimiters {
		if strings.HasPrefix(s, d.start) && d.closes(s) {
			return false
		}
	}

	return true
}

// AsRegexpArgs extracts the pattern body and flags from input. The boolean is
// false when input is not convertible under opts; this is an expected outcome,
// not an error.
//
// With opts.Literal, or with opts.Detect when input is literal text, the body
// is input with every metacharacter escaped and inline options do not apply.
// Otherwise input must be a delimited pattern: its body has every `\/`
// replaced by "/" (for both delimiter forms), and its inline options are
// merged with the flags enabled in opts.
func AsRegexpArgs(input string, opts Options) (Args, bool) {
	if opts.Detect && input == "" {
		return Args{}, false
	}

	var content string
	if opts.Literal || (opts.Detect && IsLiteral(input)) {
		content = regexp.QuoteMetaFlags(input, opts.Flags())
	} else {
		d, ok := delimiterOf(input)
		if !ok {
			return Args{}, false
		}

		body, letters, ok := d.split(input)
		if !ok {
			return Args{}, false
		}

		content = strings.ReplaceAll(body, `\/`, "/")
		opts = opts.withInline(letters)
	}

	return Args{Content: content, Flags: opts.Flags()}, true
}

// AsRegexpArgsAny is like AsRegexpArgs, but takes a loosely typed option
// record decoded by [OptionsFrom]. A malformed record is reported as an error
// wrapping [ErrInvalidOptions].
func AsRegexpArgsAny(input string, opts any) (Args, bool, error) {
	o, err := OptionsFrom(opts)
	if err != nil {
		return Args{}, false, err
	}

	args, ok := AsRegexpArgs(input, o)
	return args, ok, nil
}

func delimiterOf(s string) (delimiter, bool) {
	for _, d := range delimiters {
		if strings.HasPrefix(s, d.start) {
			return d, true
		}
	}

	return delimiter{}, false
}
