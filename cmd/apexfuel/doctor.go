package apexfuel

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := service.RunDoctor(st, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Days with drifted totals: %d\n", report.DriftedDays)
			fmt.Fprintf(out, "Days with mislabeled dates: %d\n", report.MislabeledDays)
			fmt.Fprintf(out, "Categories with invalid reset frequency: %d\n", report.InvalidFrequencies)
			if doctorFix {
				fmt.Fprintf(out, "Fixed days: %d\n", report.FixedDays)
				fmt.Fprintf(out, "Fixed categories: %d\n", report.FixedCategories)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(st, false)
				if err != nil {
					return err
				}
			}
			if report.DriftedDays > 0 || report.MislabeledDays > 0 || report.InvalidFrequencies > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
