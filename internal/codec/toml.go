package codec

import (
	"context"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

var _ Codec = (*TOMLCodec)(nil)

// TOMLCodec reads and writes TOML resolver documents. Each table is a type.
type TOMLCodec struct{}

// Name returns the name of the codec.
func (c *TOMLCodec) Name() string {
	return "toml"
}

// Decode decodes a TOML document.
func (c *TOMLCodec) Decode(_ context.Context, r io.Reader) (map[string]any, error) {
	data := make(map[string]any)
	if err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("unmarshal TOML: %w", err)
	}
	return data, nil
}

// Encode writes m as TOML.
func (c *TOMLCodec) Encode(_ context.Context, w io.Writer, m map[string]any) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("writing TOML: %w", err)
	}
	return nil
}
