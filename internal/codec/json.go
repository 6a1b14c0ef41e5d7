package codec

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ Codec = (*JSONCodec)(nil)

// JSONCodec reads and writes JSON resolver documents.
type JSONCodec struct{}

// Name returns the name of the codec.
func (c *JSONCodec) Name() string {
	return "json"
}

// Decode decodes a single JSON object.
func (c *JSONCodec) Decode(_ context.Context, r io.Reader) (map[string]any, error) {
	var data map[string]any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// Encode writes m as indented JSON.
func (c *JSONCodec) Encode(_ context.Context, w io.Writer, m map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
