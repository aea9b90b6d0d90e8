package apexfuel

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the daily fuel ledger",
}

var (
	logFood   string
	logWeight int
	logDate   string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a library food by weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePositive("--weight", logWeight); err != nil {
			return err
		}
		date, err := dateKeyOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			food, ok, err := service.FoodByID(st, logFood)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("food %q not found in the library", logFood)
			}
			entry := service.NewFoodEntry(food, logWeight, time.Now())
			day, err := service.AddLogEntry(st, date, entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%dg) on %s: C%d P%d F%d\n",
				food.Name, logWeight, date, entry.Carbs, entry.Protein, entry.Fat)
			printDayTotals(cmd, day)
			return nil
		})
	},
}

var quickDate string

var logQuickCmd = &cobra.Command{
	Use:   "quick <carb|protein|fat> <grams>",
	Short: "Quick-add a single macro amount",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind model.FoodCategory
		switch strings.ToLower(args[0]) {
		case "carb":
			kind = model.CategoryCarb
		case "protein":
			kind = model.CategoryProtein
		case "fat":
			kind = model.CategoryFat
		default:
			return fmt.Errorf("unknown macro %q, expected carb, protein, or fat", args[0])
		}
		grams := parseGrams(args[1])
		if grams <= 0 {
			return fmt.Errorf("grams must be > 0")
		}
		date, err := dateKeyOrToday(quickDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			entry := service.NewQuickEntry(kind, grams, time.Now())
			day, err := service.AddLogEntry(st, date, entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s\n", entry.FoodName, date)
			printDayTotals(cmd, day)
			return nil
		})
	},
}

var (
	manualCarbs   string
	manualProtein string
	manualFat     string
	manualDate    string
)

var logManualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Log a manual macro override entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateKeyOrToday(manualDate)
		if err != nil {
			return err
		}
		// Unparseable macro values become zero instead of aborting.
		carbs := parseGrams(manualCarbs)
		protein := parseGrams(manualProtein)
		fat := parseGrams(manualFat)
		return withStore(func(st *store.Store) error {
			entry := service.NewManualEntry(carbs, protein, fat, time.Now())
			day, err := service.AddLogEntry(st, date, entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged manual entry on %s: C%d P%d F%d\n", date, carbs, protein, fat)
			printDayTotals(cmd, day)
			return nil
		})
	},
}

var listLogDate string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one day's entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateKeyOrToday(listLogDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			day, err := service.LogForDate(st, date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tWEIGHT\tC\tP\tF")
			for _, e := range day.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
					e.ID, formatEntryTime(e.Timestamp), e.FoodName, e.WeightGrams, e.Carbs, e.Protein, e.Fat)
			}
			printDayTotals(cmd, day)
			return nil
		})
	},
}

var deleteLogDate string

var logDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete an entry from a day's log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateKeyOrToday(deleteLogDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			day, err := service.DeleteLogEntry(st, date, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s from %s\n", args[0], date)
			printDayTotals(cmd, day)
			return nil
		})
	},
}

func printDayTotals(cmd *cobra.Command, day model.DailyLog) {
	fmt.Fprintf(cmd.OutOrStdout(), "Totals for %s: carbs %dg, protein %dg, fat %dg (%d kcal)\n",
		day.Date, day.TotalCarbs, day.TotalProtein, day.TotalFat,
		service.Calories(day.TotalCarbs, day.TotalProtein, day.TotalFat))
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logQuickCmd, logManualCmd, logListCmd, logDeleteCmd)

	logAddCmd.Flags().StringVar(&logFood, "food", "", "Library food id")
	logAddCmd.Flags().IntVar(&logWeight, "weight", 0, "Weight in grams")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date in YYYY-MM-DD (default today)")
	_ = logAddCmd.MarkFlagRequired("food")
	_ = logAddCmd.MarkFlagRequired("weight")

	logQuickCmd.Flags().StringVar(&quickDate, "date", "", "Date in YYYY-MM-DD (default today)")

	logManualCmd.Flags().StringVar(&manualCarbs, "carbs", "0", "Carb grams")
	logManualCmd.Flags().StringVar(&manualProtein, "protein", "0", "Protein grams")
	logManualCmd.Flags().StringVar(&manualFat, "fat", "0", "Fat grams")
	logManualCmd.Flags().StringVar(&manualDate, "date", "", "Date in YYYY-MM-DD (default today)")

	logListCmd.Flags().StringVar(&listLogDate, "date", "", "Date in YYYY-MM-DD (default today)")
	logDeleteCmd.Flags().StringVar(&deleteLogDate, "date", "", "Date in YYYY-MM-DD (default today)")
}
