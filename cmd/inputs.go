package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sap-gg/gqlmerge/internal/codec"
	"github.com/sap-gg/gqlmerge/internal/manifest"
	"github.com/sap-gg/gqlmerge/internal/templ"
	"github.com/sap-gg/gqlmerge/resolvers"
)

// mergeInputs are shared by every command that merges resolver documents.
type mergeInputs struct {
	manifestPath string
	exclusions   []string
	values       map[string]string
	secrets      map[string]string
}

var inputFlags = &mergeInputs{}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFlags.manifestPath, "manifest", "m", "",
		"Path to a manifest listing the sources to merge")
	cmd.Flags().StringSliceVarP(&inputFlags.exclusions, "exclude", "x", nil,
		"Type.field, Type.* or Type to remove from the merged result (repeatable)")
	cmd.Flags().StringToStringVar(&inputFlags.values, "set", nil,
		"Runtime value passed to template sources, e.g. --set tenant=acme")
	cmd.Flags().StringToStringVar(&inputFlags.secrets, "secret", nil,
		"Like --set, but the value is redacted from all log output")
}

// sensitiveValues returns the values given with --secret.
func (in *mergeInputs) sensitiveValues() []string {
	out := make([]string, 0, len(in.secrets))
	for _, v := range in.secrets {
		out = append(out, v)
	}
	return out
}

// args returns the runtime arguments template sources are rendered with.
func (in *mergeInputs) args() map[string]any {
	args := make(map[string]any, len(in.values)+len(in.secrets))
	for k, v := range in.values {
		args[k] = v
	}
	for k, v := range in.secrets {
		args[k] = v
	}
	return args
}

// load collects the manifest sources followed by the given files.
func (in *mergeInputs) load(
	ctx context.Context,
	codecs *codec.Registry,
	files []string,
) (resolvers.Group, []string, error) {
	renderer := templ.NewTemplateRenderer()

	var (
		defs       resolvers.Group
		exclusions []string
	)
	if in.manifestPath != "" {
		m, manifestDir, err := manifest.Read(ctx, in.manifestPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading manifest: %w", err)
		}
		group, err := manifest.NewLoader(manifestDir, codecs, renderer).Load(ctx, m.Sources)
		if err != nil {
			return nil, nil, fmt.Errorf("loading manifest sources: %w", err)
		}
		defs = append(defs, group...)
		exclusions = append(exclusions, m.Exclusions...)
	}

	if len(files) > 0 {
		group, err := manifest.NewLoader("", codecs, renderer).Load(ctx, manifest.Sources(files...))
		if err != nil {
			return nil, nil, fmt.Errorf("loading sources: %w", err)
		}
		defs = append(defs, group...)
	}

	if len(defs) == 0 {
		return nil, nil, fmt.Errorf("no sources given: pass files or --manifest")
	}

	exclusions = append(exclusions, in.exclusions...)
	return defs, exclusions, nil
}

// merge loads and merges all sources and resolves factory results with the
// runtime arguments.
func (in *mergeInputs) merge(
	ctx context.Context,
	codecs *codec.Registry,
	files []string,
) (resolvers.Map, error) {
	defs, exclusions, err := in.load(ctx, codecs, files)
	if err != nil {
		return nil, err
	}

	result := resolvers.Merge(defs, resolvers.WithExclusions(exclusions...))

	if _, isFactory := result.(resolvers.Factory); len(exclusions) > 0 && (isFactory || len(defs) == 1) {
		reason := "single source"
		if isFactory {
			reason = "result contains template sources"
		}
		log.Warn().
			Strs("exclusions", exclusions).
			Str("reason", reason).
			Msg("exclusions were not applied")
	}

	merged := result.Resolve(in.args())
	log.Debug().
		Int("sources", len(defs)).
		Int("types", len(merged)).
		Msg("merged resolver maps")
	return merged, nil
}
