package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-datesort/pkg/service"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// NewGotoCmd creates the `datesort goto` command.
func NewGotoCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goto <file|name> <action>",
		Short: "Resolve a bookmark action to the bookmark it points at",
		Long: `Execute a bookmark action reference the way a viewer would and print the
bookmark it lands on.

Example:
  datesort goto q1 'this.bookmarkRoot.children[1].children[0].execute()'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			o, err := s.Load(args[0])
			if err != nil {
				return err
			}

			n, p, err := s.Goto(o.Root, tree.ActionRef(args[1]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, n.Name)
			return nil
		},
	}
	return cmd
}
