package toml

import (
	"bytes"

	"github.com/pelletier/go-toml"
)

// Marshal returns the TOML encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	return toml.Marshal(v)
}

// Unmarshal parses the TOML-encoded data strictly and stores the
// result in the value, a key in the data without a destination field
// is an error instead of being dropped silently.
func Unmarshal(data []byte, v interface{}) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.Strict(true)
	return decoder.Decode(v)
}
