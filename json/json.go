package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

func newEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}
