package apexfuel

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage pit-stop checklists",
}

var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all checklist categories and items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			cats, err := service.Checklists(st)
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s)\n", c.ID, c.Title, c.ResetFrequency)
				for _, it := range c.Items {
					mark := " "
					if it.Checked {
						mark = "x"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s\t%s\n", mark, it.ID, it.Text)
				}
			}
			return nil
		})
	},
}

var checklistCheckCmd = &cobra.Command{
	Use:   "check <category-id> <item-id>",
	Short: "Mark an item as done",
	Args:  cobra.ExactArgs(2),
	RunE:  toggleRunE(true),
}

var checklistUncheckCmd = &cobra.Command{
	Use:   "uncheck <category-id> <item-id>",
	Short: "Mark an item as not done",
	Args:  cobra.ExactArgs(2),
	RunE:  toggleRunE(false),
}

func toggleRunE(checked bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.ToggleChecklistItem(st, args[0], args[1], checked); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %s checked=%t\n", args[1], checked)
			return nil
		})
	}
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset <category-id>",
	Short: "Uncheck every item in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.ResetChecklistCategory(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset category %s\n", args[0])
			return nil
		})
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage checklist categories",
}

var categoryFrequency string

var categoryAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a checklist category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		freq, err := parseFrequency(categoryFrequency)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			cat, err := service.AddChecklistCategory(st, args[0], freq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %s (%s)\n", cat.Title, cat.ID)
			return nil
		})
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a checklist category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteChecklistCategory(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", args[0])
			return nil
		})
	},
}

var categoryFrequencyCmd = &cobra.Command{
	Use:   "set-frequency <category-id> <DAILY|MANUAL>",
	Short: "Change when a category resets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		freq, err := parseFrequency(args[1])
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			upd := service.ChecklistCategoryUpdate{ResetFrequency: &freq}
			if err := service.UpdateChecklistCategory(st, args[0], upd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %s resets %s\n", args[0], freq)
			return nil
		})
	},
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage checklist items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <category-id> <text>",
	Short: "Add an item to a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			item, err := service.AddChecklistItem(st, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %s (%s)\n", item.Text, item.ID)
			return nil
		})
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <category-id> <item-id>",
	Short: "Delete an item from a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteChecklistItem(st, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", args[1])
			return nil
		})
	},
}

func parseFrequency(value string) (model.ResetFrequency, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "DAILY":
		return model.ResetDaily, nil
	case "MANUAL":
		return model.ResetManual, nil
	default:
		return "", fmt.Errorf("unknown reset frequency %q, expected DAILY or MANUAL", value)
	}
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.AddCommand(checklistListCmd, checklistCheckCmd, checklistUncheckCmd, checklistResetCmd, categoryCmd, itemCmd)
	categoryCmd.AddCommand(categoryAddCmd, categoryDeleteCmd, categoryFrequencyCmd)
	itemCmd.AddCommand(itemAddCmd, itemDeleteCmd)

	categoryAddCmd.Flags().StringVar(&categoryFrequency, "frequency", "DAILY", "Reset frequency: DAILY or MANUAL")
}
