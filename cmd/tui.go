package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-datesort/internal/tui/browser"
	"github.com/mattsolo1/grove-datesort/pkg/service"
)

// NewBrowseCmd creates the `datesort browse` command.
func NewBrowseCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse <file|name>",
		Aliases: []string{"tui"},
		Short:   "Browse an outline interactively",
		Long: `Open an outline in an interactive tree view. Pressing enter on a sorted
bookmark follows its action and jumps to the original bookmark.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("TUI mode requires an interactive terminal")
			}

			s := *svc
			o, err := s.Load(args[0])
			if err != nil {
				return err
			}

			title := o.Title
			if title == "" {
				title = args[0]
			}
			model := browser.New(title, o.Root, s.Goto)
			p := tea.NewProgram(model, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	return cmd
}
