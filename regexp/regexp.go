package regexp

import (
	"strconv"
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features and flags detected at compile time.
type Regexp struct {
	source string
	flags  Flags
	core   *coregex.Regex
	pcre   *regexp2.Regexp
}

// Compile parses a regular expression without flags. It is shorthand for
// CompileFlags(pattern, 0).
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, 0)
}

// CompileFlags parses a regular expression and returns a compiled Regexp
// honouring flags. Patterns compiled with any flag, and patterns that require
// PCRE/Perl-only features (detected by needsPCRE), are compiled with regexp2
// using its native options; everything else uses coregex for speed.
//
// Errors from the underlying engine are returned unchanged. The pattern is
// handed to the engine exactly as given, so error messages only quote text
// the caller wrote.
func CompileFlags(pattern string, flags Flags) (*Regexp, error) {
	flags &= allFlags

	if flags != 0 || needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, flags.pcreOptions())
		if err != nil {
			return nil, err
		}
		return &Regexp{source: pattern, flags: flags, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{source: pattern, flags: flags, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MustCompileFlags is like CompileFlags but panics if the expression cannot
// be parsed.
func MustCompileFlags(pattern string, flags Flags) *Regexp {
	re, err := CompileFlags(pattern, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source pattern used to compile the Regexp, without the
// flags.
func (r *Regexp) String() string {
	return r.source
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// Literal renders the Regexp in its canonical delimited form, e.g.
// "/a\/b/mi". See [FormatLiteral].
func (r *Regexp) Literal() string {
	return FormatLiteral(r.source, r.flags)
}

// FormatLiteral renders source and flags as a delimited pattern literal.
// Every slash in source is written as `\/`, so replacing each `\/` in the
// body with "/" gives source back.
func FormatLiteral(source string, flags Flags) string {
	var b strings.Builder
	b.Grow(len(source) + 5)
	b.WriteByte('/')
	b.WriteString(strings.ReplaceAll(source, "/", `\/`))
	b.WriteByte('/')
	b.WriteString(flags.String())
	return b.String()
}

// Scoped renders r as an inline group carrying its own flags, e.g.
// "(?i-sx:cats)", so it keeps its meaning when embedded in another pattern.
func (r *Regexp) Scoped() string {
	var b strings.Builder
	b.Grow(len(r.source) + 10)
	b.WriteString("(?")
	b.WriteString(r.flags.groupFlags())
	b.WriteByte(':')
	b.WriteString(r.source)
	if r.flags.Has(Extended) && strings.Contains(r.source, "#") {
		// A trailing comment would swallow the closing paren.
		b.WriteByte('\n')
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether r and o were compiled from the same source and flags.
func (r *Regexp) Equal(o *Regexp) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.source == o.source && r.flags == o.flags
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		// coregex's match-only fast path disagrees with its own searcher on
		// anchored and case-folded patterns.
		return r.core.FindStringIndex(s) != nil
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(s, m.Groups())
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	matches := make([]string, 0)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}
		matches = append(matches, m.String())
		m, err = r.pcre.FindNextMatch(m)
	}
	return matches
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return maxGroupNumber(r.pcre)
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1].
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	max := maxGroupNumber(r.pcre)
	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		name := r.pcre.GroupNameFromNumber(i)
		// regexp2 names unnamed groups by their number.
		if name == strconv.Itoa(i) {
			name = ""
		}
		names[i] = name
	}

	return names
}

func maxGroupNumber(re *regexp2.Regexp) int {
	max := 0
	for _, v := range re.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}
	return max
}

func groupsToStrings(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	runes := []rune(s)
	for i, g := range groups {
		if len(g.Captures) == 0 || g.Index < 0 || g.Length < 0 {
			continue
		}
		out[i] = string(runes[g.Index : g.Index+g.Length])
	}
	return out
}

func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
