package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-datesort/cmd"
	"github.com/mattsolo1/grove-datesort/cmd/config"
	"github.com/mattsolo1/grove-datesort/pkg/service"
)

var svc *service.Service

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datesort",
		Short: "Regroup outline bookmarks by the dates in their labels",
		Long: `datesort finds every bookmark whose label contains a YYYY-MM-DD date,
wherever it sits in the outline, and lists them chronologically under a new
holder while keeping the original outline intact.`,
		SilenceErrors: true,
	}
	rootCmd.Version = cmd.VersionInfo{Version: cmd.Version, Commit: cmd.Commit, Date: cmd.Date}.String()
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()

		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg)

		notifier := service.NotifierFunc(func(message string) {
			logger.Debug(message)
			fmt.Fprintln(os.Stderr, message)
		})

		svc, err = service.New(cfg, logrus.NewEntry(logger), notifier)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRunE = func(c *cobra.Command, args []string) error {
		if svc != nil {
			return svc.Close()
		}
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewSortCmd(&svc))
	rootCmd.AddCommand(cmd.NewShowCmd(&svc))
	rootCmd.AddCommand(cmd.NewGotoCmd(&svc))
	rootCmd.AddCommand(cmd.NewImportCmd(&svc))
	rootCmd.AddCommand(cmd.NewExportCmd(&svc))
	rootCmd.AddCommand(cmd.NewRemoveCmd(&svc))
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewBrowseCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if svc == nil || !service.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		if svc != nil {
			svc.Close()
		}
		os.Exit(1)
	}
}
