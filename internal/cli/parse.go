package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reqdetect/pkg/manifest"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // text, json or toml
	strict bool   // abort on the first malformed line
}

// parseCommand creates the parse command. Requirement lines come from the
// arguments, or from stdin when no arguments are given.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{output: outputText}

	cmd := &cobra.Command{
		Use:   "parse [requirement...]",
		Short: "Parse requirement lines into structured form",
		Long: `Parse pip requirement lines into name, version constraints, extras and URL.

Lines are read from the arguments, or from stdin when none are given.
Use -- before arguments that start with a dash.

Examples:
  reqdetect parse 'Django==1.5.2' 'tablib[xml, html] ~= 1.0'
  reqdetect parse -o json -- -e git+https://github.com/org/lib.git#egg=lib
  reqdetect parse --strict < requirements.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) > 0 {
				in = strings.NewReader(strings.Join(args, "\n"))
			}
			return runParse(cmd.Context(), in, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output format: text, json or toml")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first malformed line instead of skipping it")

	return cmd
}

func runParse(ctx context.Context, in io.Reader, out io.Writer, opts parseOpts) error {
	if err := validateOutput(opts.output); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := manifest.ParseRequirements(in, manifest.Options{
		Policy: scanPolicy(opts.strict),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	records := make([]record, 0, len(result.Entries))
	for _, e := range result.Entries {
		records = append(records, newRecord(e))
	}
	if err := writeRecords(out, opts.output, records); err != nil {
		return err
	}
	if opts.output == outputText && len(result.Skipped) > 0 {
		printWarning(out, "%d malformed line(s) skipped", len(result.Skipped))
	}

	prog.done(fmt.Sprintf("Parsed %d requirements", len(records)))
	return nil
}
