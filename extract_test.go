package toregexp

import (
	"testing"
)

func TestAsRegexpArgsDelimited(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  Args
	}{
		{name: "slash", input: "/foo/", want: Args{Content: "foo"}},
		{name: "empty", input: "//", want: Args{Content: ""}},
		{name: "inlineI", input: "/finalis(é)/in", want: Args{Content: "finalis(é)", Flags: IgnoreCase}},
		{name: "inlineMI", input: "/FOO.*(BAR)/mi", want: Args{Content: "FOO.*(BAR)", Flags: IgnoreCase | Multiline}},
		{name: "inlineAll", input: "/a/xmi", want: Args{Content: "a", Flags: IgnoreCase | Multiline | Extended}},
		{name: "ignoredLetters", input: "/a/nesu", want: Args{Content: "a"}},
		{name: "percentR", input: "%r{(/)}", want: Args{Content: "(/)"}},
		{name: "percentRInline", input: "%r{a b}x", want: Args{Content: "a b", Flags: Extended}},
		{name: "greedyBody", input: "/a/b/", want: Args{Content: "a/b"}},
		{name: "greedyPercentR", input: "%r{a}b}", want: Args{Content: "a}b"}},
		{name: "optionLettersInBody", input: "/foo/ix/", want: Args{Content: "foo/ix"}},
		{name: "unescapeSlash", input: `/a\/b/`, want: Args{Content: "a/b"}},
		{name: "unescapeSlashPercentR", input: `%r{a\/b}`, want: Args{Content: "a/b"}},
		{name: "escapedBackslashBeforeSlash", input: `/a\\/b/`, want: Args{Content: `a\/b`}},
		{name: "onlyOptionLetters", input: "/i/i", want: Args{Content: "i", Flags: IgnoreCase}},
		{name: "keepsOtherEscapes", input: `/foo\b\}/`, want: Args{Content: `foo\b\}`}},
		{name: "newlineInBody", input: "/foo\nbar/m", want: Args{Content: "foo\nbar", Flags: Multiline}},
		{name: "optionIgnoreCase", input: "/(FOO)/", opts: Options{IgnoreCase: true}, want: Args{Content: "(FOO)", Flags: IgnoreCase}},
		{name: "optionsMerge", input: "/a/m", opts: Options{IgnoreCase: true, Extended: true}, want: Args{Content: "a", Flags: IgnoreCase | Multiline | Extended}},
		{name: "inlineNeverClears", input: "/a/", opts: Options{Multiline: true}, want: Args{Content: "a", Flags: Multiline}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsRegexpArgs(tt.input, tt.opts)
			if !ok {
				t.Fatalf("AsRegexpArgs(%q) not convertible", tt.input)
			}
			if got != tt.want {
				t.Fatalf("AsRegexpArgs(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAsRegexpArgsNotConvertible(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
	}{
		{name: "plain", input: "hi"},
		{name: "empty", input: ""},
		{name: "emptyDetect", input: "", opts: Options{Detect: true}},
		{name: "emptyDetectLiteral", input: "", opts: Options{Detect: true, Literal: true}},
		{name: "loneSlash", input: "/"},
		{name: "loneSlashDetect", input: "/", opts: Options{Detect: true}},
		{name: "unknownOption", input: "/foo/z"},
		{name: "unterminated", input: "/foo"},
		{name: "unterminatedPercentR", input: "%r{foo"},
		{name: "percentRWithoutBrace", input: "%r{foo/"},
		{name: "lettersWithoutDelimiter", input: "/mix"},
		{name: "trailingText", input: "foo/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := AsRegexpArgs(tt.input, tt.opts); ok {
				t.Fatalf("AsRegexpArgs(%q, %+v) = %+v, want not convertible", tt.input, tt.opts, got)
			}
		})
	}
}

func TestAsRegexpArgsDetect(t *testing.T) {
	detect := Options{Detect: true}

	tests := []struct {
		input string
		want  Args
	}{
		{input: "//", want: Args{Content: ""}},
		{input: "foo", want: Args{Content: "foo"}},
		{input: `foo\b`, want: Args{Content: `foo\\b`}},
		{input: `/foo\b/`, want: Args{Content: `foo\b`}},
		{input: `foo\b/`, want: Args{Content: `foo\\b/`}},
		{input: `/foo\b/i`, want: Args{Content: `foo\b`, Flags: IgnoreCase}},
		{input: `foo\b/i`, want: Args{Content: `foo\\b/i`}},
		{input: "/FOO.*(BAR)/mi", want: Args{Content: "FOO.*(BAR)", Flags: IgnoreCase | Multiline}},
		{input: "a.b", want: Args{Content: `a\.b`}},
		{input: "%r{x}", want: Args{Content: "x"}},
		{input: "%r{x", want: Args{Content: `%r\{x`}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := AsRegexpArgs(tt.input, detect)
			if !ok {
				t.Fatalf("AsRegexpArgs(%q, detect) not convertible", tt.input)
			}
			if got != tt.want {
				t.Fatalf("AsRegexpArgs(%q, detect) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAsRegexpArgsLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  Args
	}{
		{name: "delimitedText", input: "/(FOO)/", opts: Options{Literal: true}, want: Args{Content: `/\(FOO\)/`}},
		{name: "inlineNotApplied", input: "/(FOO)/i", opts: Options{Literal: true}, want: Args{Content: `/\(FOO\)/i`}},
		{name: "ignoreCase", input: "/(FOO)/", opts: Options{Literal: true, IgnoreCase: true}, want: Args{Content: `/\(FOO\)/`, Flags: IgnoreCase}},
		{name: "winsOverDetect", input: "/a/", opts: Options{Literal: true, Detect: true}, want: Args{Content: "/a/"}},
		{name: "empty", input: "", opts: Options{Literal: true}, want: Args{Content: ""}},
		{name: "extendedEscapesSpace", input: "a b#c", opts: Options{Literal: true, Extended: true}, want: Args{Content: `a\x20b\x23c`, Flags: Extended}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsRegexpArgs(tt.input, tt.opts)
			if !ok {
				t.Fatalf("AsRegexpArgs(%q) not convertible", tt.input)
			}
			if got != tt.want {
				t.Fatalf("AsRegexpArgs(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAsRegexpArgsDoesNotMutateOptions(t *testing.T) {
	opts := Options{}
	if _, ok := AsRegexpArgs("/a/mix", opts); !ok {
		t.Fatal("expected /a/mix to be convertible")
	}
	if opts != (Options{}) {
		t.Fatalf("options changed to %+v", opts)
	}
}

func TestAsRegexpArgsRoundTrip(t *testing.T) {
	contents := []string{"", "foo", "a.*b", "(x|y)+", "é+", `\d{2,3}`}
	flagSets := []Flags{0, IgnoreCase, Multiline, Extended, IgnoreCase | Multiline, IgnoreCase | Multiline | Extended}

	for _, c := range contents {
		for _, f := range flagSets {
			for _, wrapped := range []string{
				"/" + c + "/" + f.String(),
				"%r{" + c + "}" + f.String(),
			} {
				got, ok := AsRegexpArgs(wrapped, Options{})
				if !ok {
					t.Fatalf("AsRegexpArgs(%q) not convertible", wrapped)
				}
				if want := (Args{Content: c, Flags: f}); got != want {
					t.Fatalf("AsRegexpArgs(%q) = %+v, want %+v", wrapped, got, want)
				}
			}
		}
	}
}

func TestIsLiteral(t *testing.T) {
	tests := map[string]bool{
		"":          true,
		"foo":       true,
		"foo/":      true,
		"/foo":      true,
		"/foo/z":    true,
		"%r{foo":    true,
		"%r{foo/":   true,
		"/":         false,
		"//":        false,
		"/foo/":     false,
		"/foo/mix":  false,
		"%r{foo}":   false,
		"%r{foo}iu": false,
		"/mix":      false,
	}

	for input, want := range tests {
		if got := IsLiteral(input); got != want {
			t.Fatalf("IsLiteral(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestAsRegexpArgsAny(t *testing.T) {
	got, ok, err := AsRegexpArgsAny("/(FOO)/", map[string]any{"ignore_case": "true", "color": "blue"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != (Args{Content: "(FOO)", Flags: IgnoreCase}) {
		t.Fatalf("AsRegexpArgsAny = %+v, %v", got, ok)
	}

	if _, _, err := AsRegexpArgsAny("/a/", []string{"detect"}); err == nil {
		t.Fatal("expected error for malformed options")
	}

	if _, ok, err := AsRegexpArgsAny("", map[string]bool{"detect": true}); err != nil || ok {
		t.Fatalf("AsRegexpArgsAny(empty, detect) = %v, %v", ok, err)
	}
}

func TestArgsString(t *testing.T) {
	args := Args{Content: "a/b", Flags: IgnoreCase | Multiline}
	if got, want := args.String(), `/a\/b/mi`; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
