package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cjsmith-dev/notetree/cmd"
	"github.com/cjsmith-dev/notetree/cmd/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "notetree",
		Short: "A terminal note manager with nested notes",
		Long: `notetree keeps short and long notes, nests sub-notes to any depth,
and persists everything to a local file between runs.

Running it with no arguments starts the interactive session: load the saved
collection (or name a new one), navigate the menus, and save on exit.`,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			a, err := config.NewApp()
			if err != nil {
				return err
			}
			defer a.Store.Close()
			return a.Run()
		},
	}

	cobra.OnInitialize(config.InitConfig)
	config.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cmd.NewTreeCmd())
	rootCmd.AddCommand(cmd.NewHistoryCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
