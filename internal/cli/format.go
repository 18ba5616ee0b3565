package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reqdetect/pkg/manifest"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

type formatOpts struct {
	unique bool
	strict bool
}

// formatCommand creates the format command, which rewrites a requirements
// manifest from stdin into canonical pip lines.
func (c *CLI) formatCommand() *cobra.Command {
	opts := formatOpts{unique: true}

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Rewrite requirements from stdin in canonical form",
		Long: `Read a requirements manifest from stdin and print one canonical requirement per line.

Names are lowercased, extras sorted and whitespace removed. Comments, blank
lines, pip options and editable markers are dropped. Duplicates are removed
unless --unique=false is given.

Example:
  reqdetect format < requirements.txt > requirements.normalized.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.unique, "unique", opts.unique, "drop requirements whose canonical form was already printed")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first malformed line instead of skipping it")

	return cmd
}

func runFormat(ctx context.Context, in io.Reader, out io.Writer, opts formatOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := manifest.ParseRequirements(in, manifest.Options{
		Policy: scanPolicy(opts.strict),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	var reqs []requirement.Requirement
	if opts.unique {
		reqs = result.Unique()
	} else {
		for _, e := range result.Entries {
			reqs = append(reqs, e.Requirement)
		}
	}
	for _, r := range reqs {
		if _, err := fmt.Fprintln(out, requirement.Format(r)); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Formatted %d requirements", len(reqs)))
	return nil
}
