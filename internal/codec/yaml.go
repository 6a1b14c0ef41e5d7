package codec

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var _ Codec = (*YAMLCodec)(nil)

// YAMLCodec reads and writes YAML resolver documents.
type YAMLCodec struct{}

// Name returns the name of the codec.
func (c *YAMLCodec) Name() string {
	return "yaml"
}

// Decode decodes a YAML mapping. An empty document decodes to an empty map.
func (c *YAMLCodec) Decode(ctx context.Context, r io.Reader) (map[string]any, error) {
	var data map[string]any
	if err := yaml.NewDecoder(r).DecodeContext(ctx, &data); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// Encode writes m as YAML with an indentation of 2 spaces.
func (c *YAMLCodec) Encode(ctx context.Context, w io.Writer, m map[string]any) error {
	if err := yaml.NewEncoder(w, yaml.Indent(2)).EncodeContext(ctx, m); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return nil
}
