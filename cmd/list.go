package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-datesort/pkg/models"
	"github.com/mattsolo1/grove-datesort/pkg/service"
)

// NewListCmd creates the `datesort list` command.
func NewListCmd(svc **service.Service) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List stored outlines",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := (*svc).List()
			if err != nil {
				return err
			}

			if listJSON {
				if infos == nil {
					infos = []*models.OutlineInfo{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No outlines stored. Use 'datesort import <file>' to add one.")
				return nil
			}
			printOutlinesTable(cmd.OutOrStdout(), infos)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	return cmd
}

func printOutlinesTable(out io.Writer, infos []*models.OutlineInfo) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tSORTED\tMODIFIED\tBOOKMARKS\tTITLE")
	fmt.Fprintln(w, "----\t------\t----------\t---------\t-----")

	for _, info := range infos {
		sorted := "no"
		if info.Sorted {
			sorted = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			info.Name, sorted, info.ModifiedAt.Format("2006-01-02"), info.NodeCount, truncateString(info.Title, 40))
	}

	w.Flush()
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
