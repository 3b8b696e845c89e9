package toregexp

import "go.dw1.io/toregexp/regexp"

// ToRegexp converts input into a compiled pattern. It returns (nil, nil) when
// input is not convertible under opts, and the engine's error unchanged when
// the extracted body is not valid pattern syntax.
func ToRegexp(input string, opts Options) (*regexp.Regexp, error) {
	args, ok := AsRegexpArgs(input, opts)
	if !ok {
		return nil, nil
	}

	return args.Compile()
}

// ToRegexpAny is like ToRegexp, but takes a loosely typed option record
// decoded by [OptionsFrom].
func ToRegexpAny(input string, opts any) (*regexp.Regexp, error) {
	o, err := OptionsFrom(opts)
	if err != nil {
		return nil, err
	}

	return ToRegexp(input, o)
}

// MustToRegexp is like ToRegexp but panics if input is not convertible or
// does not compile.
func MustToRegexp(input string, opts Options) *regexp.Regexp {
	re, err := ToRegexp(input, opts)
	if err != nil {
		panic(err)
	}
	if re == nil {
		panic("toregexp: " + input + " is not a delimited pattern")
	}

	return re
}

// Pattern is a value that can be converted into a compiled pattern. The only
// implementations are [Text] and the value returned by [Compiled].
type Pattern interface {
	ToRegexp(opts Options) (*regexp.Regexp, error)

	pattern()
}

// Text is pattern source text, delimited or literal.
type Text string

// ToRegexp converts t with [ToRegexp].
func (t Text) ToRegexp(opts Options) (*regexp.Regexp, error) {
	return ToRegexp(string(t), opts)
}

func (Text) pattern() {}

type compiled struct {
	re *regexp.Regexp
}

// Compiled wraps an already compiled pattern. Its ToRegexp returns re
// unchanged and ignores the options.
func Compiled(re *regexp.Regexp) Pattern {
	return compiled{re: re}
}

func (c compiled) ToRegexp(Options) (*regexp.Regexp, error) {
	return c.re, nil
}

func (compiled) pattern() {}

// TryConvert converts v with zero Options when v is text or a Pattern, and
// returns a compiled pattern unchanged. Any other value is not convertible and
// yields (nil, nil).
func TryConvert(v any) (*regexp.Regexp, error) {
	switch p := v.(type) {
	case *regexp.Regexp:
		return p, nil
	case string:
		return ToRegexp(p, Options{})
	case Pattern:
		return p.ToRegexp(Options{})
	default:
		return nil, nil
	}
}
