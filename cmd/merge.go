package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sap-gg/gqlmerge/internal/codec"
)

var mergeFlags = struct {
	outPath string
	format  string
}{}

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:     "merge [files...]",
	Short:   "Merges resolver documents into a single resolver map.",
	Long:    mergeLongDescription,
	Example: mergeExample,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		codecs := codec.NewDefaultRegistry()

		merged, err := inputFlags.merge(ctx, codecs, args)
		if err != nil {
			return err
		}

		out, err := outputCodec(codecs, mergeFlags.format, mergeFlags.outPath)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if mergeFlags.outPath != "" {
			f, err := os.OpenFile(mergeFlags.outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if err != nil {
				return fmt.Errorf("create/truncate output %q: %w", mergeFlags.outPath, err)
			}
			defer f.Close()
			w = f
		}

		if err := out.Encode(ctx, w, merged); err != nil {
			return fmt.Errorf("writing merged resolvers: %w", err)
		}

		if mergeFlags.outPath != "" {
			log.Info().
				Str("path", mergeFlags.outPath).
				Str("format", out.Name()).
				Int("types", len(merged)).
				Msg("wrote merged resolvers")
		}
		return nil
	},
}

// outputCodec picks the codec by explicit format, then by output file
// extension, then by the configured default.
func outputCodec(codecs *codec.Registry, format, outPath string) (codec.Codec, error) {
	if format != "" {
		return codecs.ByName(format)
	}
	if outPath != "" {
		if c, ok := codecs.For(outPath); ok {
			return c, nil
		}
	}
	return codecs.ByName(viper.GetString(OutputFormatKey))
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	addInputFlags(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeFlags.outPath, "out", "o", "",
		"Write the merged resolvers to this file instead of stdout")
	mergeCmd.Flags().StringVarP(&mergeFlags.format, "format", "f", "",
		"Output format: yaml, json, toml, properties (defaults to the output extension or output.format)")
}

const (
	mergeLongDescription = `The merge command combines resolver documents into one resolver map.

Sources come from a manifest (--manifest) followed by any files given as
arguments. Later sources override earlier ones field by field. Supported
formats are YAML, JSON, TOML and .properties (Type.field=resolver).

Sources ending in .tmpl, or marked with "template: true" in the manifest, are
rendered with the --set and --secret values before they are merged.

Exclusions (--exclude and the manifest's exclusions) are applied after
merging. They are skipped when only a single source is given or when any
template source is involved.`

	mergeExample = `
# Merge two files and drop a deprecated field
gqlmerge merge query.yaml mutation.json -x Query.legacy

# Merge everything listed in a manifest, rendering templates for a tenant
gqlmerge merge -m gqlmerge.yaml --set tenant=acme -o resolvers.json`
)
