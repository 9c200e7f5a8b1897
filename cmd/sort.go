package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-datesort/pkg/render"
	"github.com/mattsolo1/grove-datesort/pkg/service"
)

// NewSortCmd creates the `datesort sort` command.
func NewSortCmd(svc **service.Service) *cobra.Command {
	var (
		output string
		show   bool
	)

	cmd := &cobra.Command{
		Use:   "sort <file|name>",
		Short: "Group dated bookmarks chronologically",
		Long: `Collect every bookmark whose label contains a YYYY-MM-DD date and list them
chronologically under a "Sorted by Date" holder. The original bookmarks are
moved, untouched, under an "Original Bookmarks" holder.

A source is a YAML (.yaml/.yml) or Markdown (.md) outline file, or the name of
an outline imported with 'datesort import'. Files are rewritten in place unless
--output is given. An outline can only be sorted once.

Examples:
  datesort sort reading.yaml               # Sort a file in place
  datesort sort reading.md -o sorted.yaml  # Write the result elsewhere
  datesort sort q1 --show                  # Sort a stored outline and print it`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			o, res, err := s.Sort(args[0], output)
			if err != nil {
				// The notifier has already told the user.
				cmd.SilenceUsage = true
				return err
			}

			target := o.Name
			if target == "" {
				target = o.Path
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sorted %d dated bookmarks into %q (%s)\n",
				res.DateNodes, s.Sorter().SortedLabel(), target)

			if show {
				return render.Tree(cmd.OutOrStdout(), o.Root, render.Options{
					Plain:   !isTerminal(os.Stdout),
					ShowAll: true,
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the sorted outline to this file instead")
	cmd.Flags().BoolVar(&show, "show", false, "Print the sorted outline")

	return cmd
}
