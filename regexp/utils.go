package regexp

import (
	"strings"

	"github.com/coregx/coregex"
)

// pcreOnly lists substrings that only PCRE2 understands, based on
// pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// Lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:",
	"(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:",
	"(*nlb:", "(*negative_lookbehind:",
	"(?*", "(*napla:", "(?<*", "(*naplb:",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Atomic groups, branch reset, conditionals, comments
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// Escapes RE2 rejects
	`(?C`, `\C`, `\h`, `\H`, `\R`, `\X`, `\K`, `\e`, `\o{`, `\N`,
	// Named backreferences
	`\k<`, `\k'`, `\k{`, `(?P=`, `\g`,
	// Anchors RE2 does not know (\A and \z are shared)
	`\Z`, `\G`,
}

// needsPCRE reports whether pattern uses a construct that coregex cannot
// execute.
func needsPCRE(pattern string) bool {
	for _, v := range pcreOnly {
		if strings.Contains(pattern, v) {
			return true
		}
	}

	// Numbered backreferences: \1 .. \9
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' {
			if !escaped && i+1 < len(pattern) {
				next := pattern[i+1]
				if next >= '1' && next <= '9' {
					return true
				}
			}
			escaped = !escaped
		} else {
			escaped = false
		}
	}

	// Go accepts (?P<name>...) and (?<name>...), but not (?'name'...).
	if strings.Contains(pattern, "(?'") {
		return true
	}

	return inlineExtended(pattern)
}

// inlineExtended reports whether pattern sets or clears the x flag in an
// inline group such as (?x) or (?i-sx:...). RE2 has no x flag.
func inlineExtended(pattern string) bool {
	for i := 0; i+2 < len(pattern); i++ {
		if pattern[i] != '(' || pattern[i+1] != '?' {
			continue
		}

		j, x := i+2, false
		for ; j < len(pattern) && strings.IndexByte("imnsxU-", pattern[j]) >= 0; j++ {
			x = x || pattern[j] == 'x'
		}
		if x && j < len(pattern) && (pattern[j] == ':' || pattern[j] == ')') {
			return true
		}
	}

	return false
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// QuoteMetaFlags is like QuoteMeta, but the result also matches s verbatim
// when compiled with flags. Under [Extended] whitespace and '#' are written
// as \xHH escapes so they survive the whitespace-insensitive mode.
func QuoteMetaFlags(s string, flags Flags) string {
	quoted := QuoteMeta(s)
	if !flags.Has(Extended) {
		return quoted
	}

	var b strings.Builder
	b.Grow(len(quoted))
	for i := 0; i < len(quoted); i++ {
		switch c := quoted[i]; c {
		case ' ', '\t', '\n', '\v', '\f', '\r', '#':
			const hex = "0123456789abcdef"
			b.WriteString(`\x`)
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
