package apexfuel

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's fuel totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			status, err := service.TodaySummary(st, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Entries: %d\n", status.Entries)
			fmt.Fprintf(out, "Carbs: %dg\nProtein: %dg\nFat: %dg\n", status.Carbs, status.Protein, status.Fat)
			fmt.Fprintf(out, "Calories: %d kcal\n", status.Calories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
