package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schlerp/find-mshr/internal/fileutil"
	"github.com/schlerp/find-mshr/internal/finder"
)

// searchReport is the structured form of a search result for --format yaml.
type searchReport struct {
	Root    string   `yaml:"root"`
	Pattern string   `yaml:"pattern"`
	Paths   []string `yaml:"paths"`
}

// NewSearchCommand creates the search subcommand
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List files carrying MSHR identifiers",
		Long: `Recursively search for entries below --root whose names match the glob
--pattern, keep those whose path text passes the MSHR allow/deny filters,
and print them one per line. With --file, only entries whose accession
number appears in the listed set are kept.

The output can be piped to a file for use later:

  find-mshr search -r /data/x -p "*.fastq.gz" > list_of_fastq.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			pattern, _ := cmd.Flags().GetString("pattern")
			file, _ := cmd.Flags().GetString("file")
			format, _ := cmd.Flags().GetString("format")

			if err := requireIDListFile(file); err != nil {
				return err
			}

			results, err := finder.Find(finder.Options{
				Root:       root,
				Pattern:    pattern,
				IDListFile: file,
				Log:        runLogger(cmd),
			})
			if err != nil {
				return err
			}

			return writeSearchResults(cmd.OutOrStdout(), root, pattern, results, format)
		},
	}

	cmd.Flags().StringP("root", "r", ".", "Directory to start recursively searching from")
	cmd.Flags().StringP("pattern", "p", "*", "Glob matched against entry names")
	cmd.Flags().StringP("file", "f", "", "File containing a whitespace-separated list of MSHR accessions to include")
	cmd.Flags().String("format", "text", "Output format (text or yaml)")

	return cmd
}

// writeSearchResults prints one path per line, or a structured YAML report
// when requested.
func writeSearchResults(w io.Writer, root, pattern string, results []fileutil.Candidate, format string) error {
	switch format {
	case "", "text":
		for _, c := range results {
			fmt.Fprintln(w, c.Path)
		}
		return nil
	case "yaml":
		report := searchReport{Root: root, Pattern: pattern, Paths: make([]string, 0, len(results))}
		for _, c := range results {
			report.Paths = append(report.Paths, c.Path)
		}
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report)
	default:
		return usageErrorf("unknown output format %q (want text or yaml)", format)
	}
}
