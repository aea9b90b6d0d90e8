package apexfuel

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the trailing daily macro series",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			points, err := service.ProjectHistory(st, historyWindow(historyDays), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tC\tP\tF")
			for _, p := range points {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%d\n", p.FullDate, p.Carbs, p.Protein, p.Fat)
			}
			return nil
		})
	},
}

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate the trailing window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := service.Stats(st, historyWindow(statsDays), time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Window: %s .. %s\n", report.FromDate, report.ToDate)
			fmt.Fprintf(out, "Days with entries: %d\n", report.DaysWithEntries)
			fmt.Fprintf(out, "Totals: carbs %dg, protein %dg, fat %dg\n", report.TotalCarbs, report.TotalProtein, report.TotalFat)
			if report.DaysWithEntries == 0 {
				return nil
			}
			fmt.Fprintf(out, "Averages/day: carbs %.1fg, protein %.1fg, fat %.1fg, %.0f kcal\n",
				report.AvgCarbsPerDay, report.AvgProteinPerDay, report.AvgFatPerDay, report.AvgCaloriesPerDay)
			if report.HighestDay != nil {
				fmt.Fprintf(out, "Highest day: %s (%d kcal)\n", report.HighestDay.Date, report.HighestDay.Calories)
			}
			if report.LowestDay != nil {
				fmt.Fprintf(out, "Lowest day: %s (%d kcal)\n", report.LowestDay.Date, report.LowestDay.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd, statsCmd)
	historyCmd.Flags().IntVar(&historyDays, "days", 0, "Window size in days (default from config, 30)")
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "Window size in days (default from config, 30)")
}
