package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cjsmith-dev/notetree/cmd/config"
	"github.com/cjsmith-dev/notetree/pkg/store"
	"github.com/cjsmith-dev/notetree/pkg/tree"
)

// NewTreeCmd prints the saved note tree without entering the interactive
// session.
func NewTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the note tree and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := config.NewLogger()
			fileStore := store.NewFileStore(config.DataFile(), log)

			v, err := fileStore.Load()
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No notes saved yet.")
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tree.Render(v))
			return nil
		},
	}
}
