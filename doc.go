// Package toregexp turns text into compiled regular expressions.
//
// A string such as "/finalis(e)/im" or "%r{(/)}" is recognized as a
// delimited pattern: its body and inline options are extracted and compiled
// with the matching [Flags]. Strings without recognized delimiters are not
// convertible, unless the caller asks for them to be treated literally
// ([Options.Literal]) or to be classified automatically ([Options.Detect]).
//
//	re, err := toregexp.ToRegexp("/(FOO)/i", toregexp.Options{})
//	if err != nil {
//		// malformed pattern syntax, reported by the engine
//	}
//	if re == nil {
//		// not a delimited pattern
//	}
//
// [AsRegexpArgs] exposes the intermediate (content, flags) pair for callers
// that compile patterns themselves. [Union] combines several texts and
// patterns into one.
package toregexp
