package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sap-gg/gqlmerge/internal"
	"github.com/sap-gg/gqlmerge/internal/codec"
)

// Manifest lists the resolver documents to merge, in precedence order.
type Manifest struct {
	// Version indicates the version of the manifest format.
	// Currently, only version 1 is supported.
	Version int `yaml:"version"`

	// Exclusions are "Type.field", "Type.*" or "Type" entries removed from
	// the merged result.
	Exclusions []string `yaml:"exclusions" validate:"dive,required"`

	// Sources are merged from first to last, so the last source has the
	// highest precedence.
	Sources []*Source `yaml:"sources"`
}

// Source is either a single resolver document or a nested group of sources.
type Source struct {
	// Path to the document, **relative to the manifest file**
	Path string `yaml:"from"`

	// Template marks the document as a factory: it is rendered with the
	// runtime arguments every time the merged result is resolved.
	// Paths ending in ".tmpl" are templates as well.
	Template bool `yaml:"template"`

	// Codec overrides the format detected from the file extension.
	Codec string `yaml:"codec"`

	// Group is a nested batch merged before its siblings.
	Group []*Source `yaml:"group"`
}

// IsTemplate reports whether s produces a factory.
func (s *Source) IsTemplate() bool {
	return s.Template || strings.HasSuffix(s.Path, codec.TemplateSuffix)
}

// Validate checks that s names exactly one of a path or a group.
func (s *Source) Validate() error {
	switch {
	case s.Path == "" && s.Group == nil:
		return fmt.Errorf("either from or group is required")
	case s.Path != "" && s.Group != nil:
		return fmt.Errorf("from and group are mutually exclusive")
	case s.Group != nil && (s.Template || s.Codec != ""):
		return fmt.Errorf("template and codec only apply to from")
	}
	for i, child := range s.Group {
		if child == nil {
			return fmt.Errorf("group[%d] is null", i+1)
		}
		if err := child.Validate(); err != nil {
			return fmt.Errorf("group[%d]: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks the manifest after decoding.
func (m *Manifest) Validate() error {
	if m.Version != internal.ManifestVersion {
		return fmt.Errorf("unsupported manifest version %d (expected %d)",
			m.Version, internal.ManifestVersion)
	}
	if len(m.Sources) == 0 {
		return fmt.Errorf("manifest has no sources")
	}
	for i, s := range m.Sources {
		if s == nil {
			return fmt.Errorf("source[%d] is null", i+1)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("source[%d]: %w", i+1, err)
		}
	}
	return nil
}

// Read reads and parses a manifest file from the specified path, returning
// the manifest and the directory its source paths are relative to.
func Read(ctx context.Context, path string) (*Manifest, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open manifest %q: %w", path, err)
	}
	defer f.Close()

	var m Manifest
	if err := internal.NewYAMLDecoder(f).DecodeContext(ctx, &m); err != nil {
		if internal.IsDecodeErrorAndPrint(err) {
			return nil, "", fmt.Errorf("parsing manifest")
		}
		return nil, "", fmt.Errorf("decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, "", err
	}

	return &m, filepath.Dir(path), nil
}

// Sources builds plain sources for the given paths.
func Sources(paths ...string) []*Source {
	out := make([]*Source, 0, len(paths))
	for _, p := range paths {
		out = append(out, &Source{Path: p})
	}
	return out
}
