package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-datesort/pkg/render"
	"github.com/mattsolo1/grove-datesort/pkg/service"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewShowCmd creates the `datesort show` command.
func NewShowCmd(svc **service.Service) *cobra.Command {
	var (
		all     bool
		actions bool
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "show <file|name>",
		Short: "Print an outline",
		Long: `Print an outline as an indented tree. Collapsed bookmarks hide their
children unless --all is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := (*svc).Load(args[0])
			if err != nil {
				return err
			}

			if o.Title != "" {
				fmt.Fprintln(cmd.OutOrStdout(), o.Title)
			}
			return render.Tree(cmd.OutOrStdout(), o.Root, render.Options{
				Plain:       plain || !isTerminal(os.Stdout),
				ShowAll:     all,
				ShowActions: actions,
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show collapsed bookmarks' children")
	cmd.Flags().BoolVar(&actions, "actions", false, "Show action references")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors")

	return cmd
}
