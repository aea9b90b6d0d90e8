package apexfuel

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "apexfuel",
	Short: "apexfuel tracks racing fuel (macros) and pit-stop checklists from your terminal",
	Long:  "apexfuel is a local-first macro ledger with a reusable food library, trailing history charts, and daily-resetting preparation checklists.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "Path to the store file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
}
