package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sap-gg/gqlmerge/internal/codec"
	"github.com/sap-gg/gqlmerge/internal/diff"
)

var diffFlags = struct {
	exitCode bool
}{}

// diffCmd represents the diff command.
// It merges exactly like the mergeCmd, but compares the result with an
// existing resolver document instead of writing it.
var diffCmd = &cobra.Command{
	Use:     "diff <current-file> [files...]",
	Short:   "Compares the merged resolvers with an existing resolver document.",
	Long:    diffLongDescription,
	Example: diffExample,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		codecs := codec.NewDefaultRegistry()
		currentPath := args[0]

		merged, err := inputFlags.merge(ctx, codecs, args[1:])
		if err != nil {
			return err
		}

		f, err := os.Open(currentPath)
		if err != nil {
			return fmt.Errorf("open current resolvers %q: %w", currentPath, err)
		}
		defer f.Close()

		c, _ := codecs.For(currentPath)
		current, err := c.Decode(ctx, f)
		if err != nil {
			return fmt.Errorf("decode current resolvers %q: %w", currentPath, err)
		}

		report := diff.Compare(current, merged)
		printDiffReport(report)

		if !report.HasChanges() {
			log.Info().Msg("no changes detected. Current resolvers match the merged result.")
			return nil
		}

		log.Info().
			Int("created", report.Count(diff.Created)).
			Int("modified", report.Count(diff.Modified)).
			Int("removed", report.Count(diff.Removed)).
			Msg("changes detected")
		if diffFlags.exitCode {
			return fmt.Errorf("merged resolvers differ from %q", currentPath)
		}
		return nil
	},
}

func printDiffReport(report *diff.Report) {
	if !report.HasChanges() {
		return
	}

	for _, path := range report.SortedPaths() {
		change := report.Changes[path]
		switch change.Type {
		case diff.Created:
			color.Green("+ %s", path)
		case diff.Modified:
			color.Yellow("~ %s", path)
		case diff.Removed:
			color.Red("- %s", path)
		case diff.Unchanged:
			// do nothing
		}
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
	addInputFlags(diffCmd)

	diffCmd.Flags().BoolVar(&diffFlags.exitCode, "exit-code", false,
		"Exit with a non-zero status when changes are detected")
}

const (
	diffLongDescription = `The diff command provides a read-only preview of what merging would change.

It merges the sources exactly like 'gqlmerge merge' and compares the result
with <current-file>, typically the output of a previous merge. Every
"Type.field" that would be added, changed or removed is printed; types that
are missing on one side are reported as a whole.`

	diffExample = `
# Check whether the committed resolver map is up to date
gqlmerge diff resolvers.yaml -m gqlmerge.yaml --exit-code`
)
