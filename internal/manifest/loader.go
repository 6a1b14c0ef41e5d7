package manifest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/sap-gg/gqlmerge/internal/codec"
	"github.com/sap-gg/gqlmerge/internal/merge"
	"github.com/sap-gg/gqlmerge/internal/templ"
	"github.com/sap-gg/gqlmerge/resolvers"
)

// TemplateData is passed to template sources when a factory is invoked.
type TemplateData struct {
	// Args are the raw runtime arguments.
	Args []any
	// Values is the deep merge of every map argument, e.g. {{ .Values.tenant }}.
	Values map[string]any
}

// NewTemplateData builds the data for one factory invocation.
func NewTemplateData(args []any) *TemplateData {
	var maps []map[string]any
	for _, a := range args {
		if m, ok := merge.AsMap(a); ok {
			maps = append(maps, m)
		}
	}
	return &TemplateData{
		Args:   args,
		Values: merge.DeepMergeMaps(maps...),
	}
}

// Loader turns manifest sources into resolver definitions.
type Loader struct {
	baseDir  string
	codecs   *codec.Registry
	renderer *templ.TemplateRenderer
}

// NewLoader creates a loader resolving relative paths against baseDir.
func NewLoader(baseDir string, codecs *codec.Registry, renderer *templ.TemplateRenderer) *Loader {
	return &Loader{
		baseDir:  baseDir,
		codecs:   codecs,
		renderer: renderer,
	}
}

// Load converts sources into a group, keeping their order and nesting.
// Plain documents are decoded right away; templates are checked for syntax
// errors and become factories.
func (l *Loader) Load(ctx context.Context, sources []*Source) (resolvers.Group, error) {
	group := make(resolvers.Group, 0, len(sources))
	for _, s := range sources {
		def, err := l.load(ctx, s)
		if err != nil {
			return nil, err
		}
		group = append(group, def)
	}
	return group, nil
}

func (l *Loader) load(ctx context.Context, s *Source) (resolvers.Definition, error) {
	if s.Group != nil {
		return l.Load(ctx, s.Group)
	}

	path := s.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}

	c, err := l.codecFor(s)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", s.Path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source %q: %w", path, err)
	}

	if s.IsTemplate() {
		if err := l.renderer.Check(string(content)); err != nil {
			return nil, fmt.Errorf("template %q: %w", path, err)
		}
		log.Debug().Str("path", path).Str("codec", c.Name()).Msg("loaded template source")
		return l.factory(path, string(content), c), nil
	}

	m, err := c.Decode(ctx, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode source %q: %w", path, err)
	}
	log.Debug().Str("path", path).Str("codec", c.Name()).Int("types", len(m)).Msg("loaded source")
	return resolvers.Map(m), nil
}

func (l *Loader) codecFor(s *Source) (codec.Codec, error) {
	if s.Codec != "" {
		return l.codecs.ByName(s.Codec)
	}
	c, matched := l.codecs.For(s.Path)
	if !matched {
		log.Debug().Str("path", s.Path).Str("codec", c.Name()).Msg("no codec for extension, using fallback")
	}
	return c, nil
}

// factory renders content on every invocation. Render or decode failures
// are logged and yield an empty map.
func (l *Loader) factory(path, content string, c codec.Codec) resolvers.Factory {
	return func(args ...any) resolvers.Map {
		var buf bytes.Buffer
		if err := l.renderer.Render(&buf, content, NewTemplateData(args)); err != nil {
			log.Error().Err(err).Str("path", path).Msg("rendering template source")
			return resolvers.Map{}
		}
		m, err := c.Decode(context.Background(), &buf)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("decoding rendered template source")
			return resolvers.Map{}
		}
		return m
	}
}
