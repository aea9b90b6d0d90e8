package apexfuel

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full state as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			w := cmd.OutOrStdout()
			if exportOut != "" {
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := service.Export(st, w); err != nil {
				return err
			}
			if exportOut != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			}
			return nil
		})
	},
}

var importMerge bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open snapshot file: %w", err)
		}
		defer f.Close()
		return withStore(func(st *store.Store) error {
			summary, err := service.Import(st, f, importMerge)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d days, %d foods, %d checklist categories\n",
				summary.Days, summary.Foods, summary.Checklists)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Merge into existing data instead of replacing it")
}
