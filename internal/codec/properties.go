package codec

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/magiconair/properties"
)

var _ Codec = (*PropertiesCodec)(nil)

// PropertiesCodec reads flat "Type.field=resolver" documents.
type PropertiesCodec struct{}

// Name returns the name of the codec.
func (c *PropertiesCodec) Name() string {
	return "properties"
}

// Decode splits each key on its first dot into type and field. Keys without
// a dot become top-level values. Later keys replace earlier ones.
func (c *PropertiesCodec) Decode(ctx context.Context, r io.Reader) (map[string]any, error) {
	// Best-effort context check, no I/O cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	data := make(map[string]any)
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		typeName, field, found := strings.Cut(key, ".")
		if !found {
			data[key] = value
			continue
		}
		fields, ok := data[typeName].(map[string]any)
		if !ok {
			fields = make(map[string]any)
			data[typeName] = fields
		}
		fields[field] = value
	}
	return data, nil
}

// Encode flattens m into dotted keys, sorted for stable output.
func (c *PropertiesCodec) Encode(_ context.Context, w io.Writer, m map[string]any) error {
	flat := make(map[string]string)
	flatten("", m, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, k := range keys {
		if _, _, err := p.Set(k, flat[k]); err != nil {
			return fmt.Errorf("set property %q: %w", k, err)
		}
	}

	if _, err := p.Write(w, properties.UTF8); err != nil {
		return fmt.Errorf("writing properties: %w", err)
	}
	return nil
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}
