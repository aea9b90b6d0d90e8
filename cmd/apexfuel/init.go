package apexfuel

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the store and seed the default library and checklists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			path, err := resolveStorePath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store ready at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
