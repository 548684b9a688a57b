package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schlerp/find-mshr/internal/finder"
	"github.com/schlerp/find-mshr/internal/linker"
	"github.com/schlerp/find-mshr/internal/mshr"
)

// linkReport is the structured form of a link plan for --format yaml.
type linkReport struct {
	Target string        `yaml:"target"`
	Links  []linker.Link `yaml:"links"`
}

// NewLinkCommand creates the link subcommand
func NewLinkCommand() *cobra.Command {
	cmd := newLinkCommand("link", "Symlink matching files into a target directory", false)
	cmd.Long = `Search like the search command, collapse files sharing one MSHR
identifier down to the newest copy, and create a symbolic link for each
surviving file inside --target.

At least one of --file or --target must be supplied. Existing destinations
are never overwritten; the first failing link aborts the run and links
already created stay in place.

Example:

  find-mshr link --file list_of_mshr_ids.txt --root /data/x --target /home/me/x`
	return cmd
}

// NewDryLinkCommand creates the dry-link subcommand
func NewDryLinkCommand() *cobra.Command {
	cmd := newLinkCommand("dry-link", "Print the links the link command would create", true)
	cmd.Long = `Run exactly the same computation as the link command, but print one
"destination -> source" line per intended link instead of creating
anything. Useful for checking links before actually creating them.`
	return cmd
}

func newLinkCommand(use, short string, dryRun bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			pattern, _ := cmd.Flags().GetString("pattern")
			target, _ := cmd.Flags().GetString("target")
			file, _ := cmd.Flags().GetString("file")
			policy, _ := cmd.Flags().GetString("policy")
			format, _ := cmd.Flags().GetString("format")

			// Only the combination is validated; root and pattern fall back
			// to their defaults independently.
			if file == "" && target == "" {
				return usageErrorf("must specify at least one of --file or --target")
			}
			if err := requireIDListFile(file); err != nil {
				return err
			}
			if target == "" {
				target = "."
			}

			log := runLogger(cmd)
			results, err := finder.Find(finder.Options{
				Root:       root,
				Pattern:    pattern,
				IDListFile: file,
				Log:        log,
			})
			if err != nil {
				return err
			}

			resolved, err := mshr.SolveDuplicates(results, mshr.ResolutionPolicy(policy))
			if err != nil {
				return err
			}
			log.Debugf("%d candidates remain after duplicate resolution", len(resolved))

			links, err := linker.Plan(resolved, target)
			if err != nil {
				return err
			}

			if dryRun {
				return writeLinkPlan(cmd.OutOrStdout(), target, links, format)
			}
			if err := linker.Apply(links); err != nil {
				return err
			}
			log.Debugf("created %d links in %s", len(links), target)
			return nil
		},
	}

	cmd.Flags().StringP("root", "r", "", `Directory to start recursively searching from (default ".")`)
	cmd.Flags().StringP("pattern", "p", "", `Glob matched against entry names (default "*")`)
	cmd.Flags().StringP("target", "t", "", `Directory to create the links in (default ".")`)
	cmd.Flags().StringP("file", "f", "", "File containing a whitespace-separated list of MSHR accessions to include")
	cmd.Flags().String("policy", string(mshr.PolicyNewest), "Duplicate resolution policy")
	if dryRun {
		cmd.Flags().String("format", "text", "Output format (text or yaml)")
	}

	return cmd
}

// writeLinkPlan prints the dry-run plan as "dest -> source" lines, or a
// structured YAML report when requested.
func writeLinkPlan(w io.Writer, target string, links []linker.Link, format string) error {
	switch format {
	case "", "text":
		linker.Render(w, links)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(linkReport{Target: target, Links: links})
	default:
		return usageErrorf("unknown output format %q (want text or yaml)", format)
	}
}
