// Package regexp compiles patterns together with a set of [Flags] and selects
// the engine able to execute them.
//
// Patterns without flags are compiled with coregex (an accelerated
// RE2-compatible engine). Patterns compiled with any flag, and patterns that
// require PCRE/Perl features RE2 cannot execute, use [regexp2] and its native
// options.
//
// A compiled [Regexp] remembers its source and flags so it can be rendered
// back into its delimited literal form with [Regexp.Literal].
package regexp
