package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjsmith-dev/notetree/cmd/config"
	"github.com/cjsmith-dev/notetree/pkg/store"
)

// NewHistoryCmd lists the archived save snapshots.
func NewHistoryCmd() *cobra.Command {
	var showPayload int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived save snapshots",
		Long: `List the snapshots recorded by the save history archive.

The archive is off by default; enable it with history.enabled: true in the
config file. Every save then appends a snapshot of the full data file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.HistoryPath()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No save history recorded.")
				if !config.HistoryEnabled() {
					fmt.Fprintln(cmd.OutOrStdout(), "Enable it with history.enabled: true in the config file.")
				}
				return nil
			}

			history, err := store.OpenHistory(path)
			if err != nil {
				return err
			}
			defer history.Close()

			if showPayload != 0 {
				payload, err := history.Payload(showPayload)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			snapshots, err := history.List()
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No save history recorded.")
				return nil
			}
			for _, snap := range snapshots {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6d %s  %-6s %s (%d bytes)\n",
					snap.ID,
					snap.SavedAt.Format("2006-01-02 15:04:05"),
					snap.Encoding,
					snap.Name,
					snap.Size,
				)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&showPayload, "show", 0, "Print the payload of the snapshot with this id")

	return cmd
}
