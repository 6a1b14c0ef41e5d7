package codec

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Codec decodes resolver documents into nested maps and encodes merged maps
// back into the same format.
type Codec interface {
	// Name returns a human-friendly codec name for logging and flag values.
	Name() string

	// Decode reads a single document from r.
	Decode(ctx context.Context, r io.Reader) (map[string]any, error)

	// Encode writes m to w.
	Encode(ctx context.Context, w io.Writer, m map[string]any) error
}

// Registry maps file extensions to codecs.
type Registry struct {
	byExtension map[string]Codec
	byName      map[string]Codec
	// fallback is used if no codec matches the file extension.
	fallback Codec
}

// NewRegistry constructs a registry.
func NewRegistry(fallback Codec, mappings map[string]Codec) (*Registry, error) {
	if fallback == nil {
		return nil, fmt.Errorf("fallback codec cannot be nil")
	}
	byExt := make(map[string]Codec)
	byName := map[string]Codec{fallback.Name(): fallback}
	for ext, c := range mappings {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || !strings.HasPrefix(ext, ".") {
			return nil, fmt.Errorf("invalid extension key for codec: %q", ext)
		}
		if c == nil {
			return nil, fmt.Errorf("codec for extension %q cannot be nil", ext)
		}
		byExt[ext] = c
		byName[c.Name()] = c
	}
	return &Registry{
		byExtension: byExt,
		byName:      byName,
		fallback:    fallback,
	}, nil
}

// NewDefaultRegistry returns a registry knowing every built-in codec, with
// YAML as the fallback.
func NewDefaultRegistry() *Registry {
	yamlCodec := &YAMLCodec{}
	r, err := NewRegistry(yamlCodec, map[string]Codec{
		".yaml":       yamlCodec,
		".yml":        yamlCodec,
		".json":       &JSONCodec{},
		".toml":       &TOMLCodec{},
		".properties": &PropertiesCodec{},
	})
	if err != nil {
		// static mappings above are valid
		panic(err)
	}
	return r
}

// For returns the codec for a given filename. Template suffixes such as
// ".tmpl" are ignored, so "query.yaml.tmpl" resolves to YAML.
func (r *Registry) For(filename string) (Codec, bool) {
	filename = strings.TrimSuffix(filename, TemplateSuffix)
	ext := strings.ToLower(filepath.Ext(filename))
	if c, ok := r.byExtension[ext]; ok {
		return c, true
	}
	return r.fallback, false
}

// ByName returns the codec registered under name.
func (r *Registry) ByName(name string) (Codec, error) {
	if c, ok := r.byName[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown format %q (known: %s)", name, strings.Join(r.Names(), ", "))
}

// Names returns the sorted names of all registered codecs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Fallback returns the fallback codec.
func (r *Registry) Fallback() Codec {
	return r.fallback
}

// TemplateSuffix marks factory source files.
const TemplateSuffix = ".tmpl"
