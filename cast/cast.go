package cast

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// ErrUnsupported is returned when a value has a shape that cannot be
// converted.
var ErrUnsupported = errors.New("unsupported conversion")

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// To converts v to type T.
func To[T Basic](v any) (T, error) {
	return cast.ToE[T](v)
}

// ToMust converts v to type T and panics on error.
func ToMust[T Basic](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// Bool converts v to a boolean. A nil value is false.
func Bool(v any) (bool, error) {
	if v == nil {
		return false, nil
	}

	return To[bool](v)
}

// StringMap converts v to a map[string]any. Maps keyed by strings with any
// basic value type are copied; other values are handed to
// [cast.ToStringMapE], which also accepts a JSON object encoded as a string.
func StringMap(v any) (map[string]any, error) {
	switch m := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: <nil> to map[string]any", ErrUnsupported)
	case map[string]any:
		return m, nil
	case map[string]bool:
		return copyMap(m), nil
	case map[string]string:
		return copyMap(m), nil
	case map[string]int:
		return copyMap(m), nil
	}

	out, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	return out, nil
}

func copyMap[V any](m map[string]V) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
