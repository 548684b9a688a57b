// Package cmd wires the find-mshr command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/schlerp/find-mshr/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// UsageError marks a user mistake: bad flags, a missing required argument
// combination, an unknown subcommand, or a missing ID-list file. The entry
// point prints the usage text only for this variant; every other error is
// treated as an unexpected failure and printed bare.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// NewRootCommand creates and returns the root cobra command for find-mshr
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-mshr",
		Short: "Find and link files carrying MSHR sample identifiers",
		Long: `find-mshr recursively searches a directory tree for files whose names
encode an MSHR accession number plus a run/replicate suffix, optionally
restricts them to an allow-list of accessions loaded from a file, collapses
duplicate files sharing one identifier to the newest copy, and either
prints the result or creates symbolic links to it in a target directory.

Examples:
  # List every *.fastq.gz below /data/x that carries an MSHR identifier
  find-mshr search --root /data/x --pattern "*.fastq.gz"

  # Link the newest copy of each listed accession into a project folder
  find-mshr link --file mshr_lists/all.txt \
      --root /data/melioidosis/genomes/Bpseudomallei/ \
      --target ~/projects/bps_project/genomes/all

  # Preview the links the command above would create
  find-mshr dry-link --file mshr_lists/all.txt \
      --root /data/melioidosis/genomes/Bpseudomallei/ \
      --target ~/projects/bps_project/genomes/all`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Route unknown subcommands here instead of letting cobra fail so
		// they surface as usage errors.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q, must call a sub command (search, link, dry-link)", args[0])
			}
			return usageErrorf("must call a sub command (search, link, dry-link)")
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable diagnostic output on stderr")

	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewLinkCommand())
	cmd.AddCommand(NewDryLinkCommand())

	return cmd
}

// Execute runs the CLI and converts errors into exit behavior: usage errors
// print the message followed by the usage text, anything else prints bare.
// Both return a non-zero code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(os.Stderr, root.UsageString())
		}
		return 1
	}
	return 0
}

// runLogger builds the diagnostic logger for a command invocation. Verbose
// runs log at debug level; otherwise only warnings and errors surface.
func runLogger(cmd *cobra.Command) *logger.ConsoleLogger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.NewConsoleLogger(cmd.ErrOrStderr(), level)
}

// requireIDListFile verifies the accession list exists before any traversal
// starts, so a mistyped path is reported as a usage problem rather than a
// mid-run failure.
func requireIDListFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return usageErrorf("ID list file %s doesn't exist", path)
		}
		return err
	}
	return nil
}
