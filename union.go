package toregexp

import (
	"errors"
	"fmt"
	"strings"

	"go.dw1.io/toregexp/regexp"
)

// ErrNotPattern is returned by [Union] for a part that is neither text nor a
// pattern.
var ErrNotPattern = errors.New("toregexp: not a pattern")

// never matches nothing; it is the union of no parts.
const never = "(?!)"

// Union returns a pattern matching any of parts. Each part is converted with
// [TryConvert]: delimited text and compiled patterns keep their own flags by
// being embedded as scoped groups, and any other text is matched literally.
// A single slice argument is expanded into its elements.
//
// A union of one part is that part's pattern itself; a union of no parts
// matches nothing.
func Union(parts ...any) (*regexp.Regexp, error) {
	if len(parts) == 1 {
		switch v := parts[0].(type) {
		case []string:
			parts = make([]any, len(v))
			for i, s := range v {
				parts[i] = s
			}
		case []any:
			parts = v
		}
	}

	if len(parts) == 0 {
		return regexp.Compile(never)
	}

	alts := make([]string, len(parts))
	for i, p := range parts {
		re, err := TryConvert(p)
		if err != nil {
			return nil, err
		}

		switch {
		case re != nil && len(parts) == 1:
			return re, nil
		case re != nil:
			alts[i] = re.Scoped()
		default:
			s, ok := p.(string)
			if !ok {
				if t, isText := p.(Text); isText {
					s, ok = string(t), true
				}
			}
			if !ok {
				return nil, fmt.Errorf("%w: %T", ErrNotPattern, p)
			}
			alts[i] = regexp.QuoteMeta(s)
		}
	}

	return regexp.Compile(strings.Join(alts, "|"))
}
