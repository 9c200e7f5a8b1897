package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-datesort/pkg/service"
)

// NewImportCmd creates the `datesort import` command.
func NewImportCmd(svc **service.Service) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Store an outline file under a name",
		Long: `Import a YAML or Markdown outline into the local outline store so it can be
sorted, shown and browsed by name. Importing over an existing name replaces it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := (*svc).Import(args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d bookmarks)\n", info.Name, info.NodeCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Store name (default: file name without extension)")

	return cmd
}

// NewExportCmd creates the `datesort export` command.
func NewExportCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Write a stored outline to a file",
		Long:  "Write a stored outline to a YAML (.yaml/.yml) or Markdown (.md) file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*svc).Export(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}

// NewRemoveCmd creates the `datesort rm` command.
func NewRemoveCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <name>...",
		Aliases: []string{"remove"},
		Short:   "Delete stored outlines",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := (*svc).Delete(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
			}
			return nil
		},
	}
	return cmd
}
