package apexfuel

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the fuel library",
}

var (
	foodName     string
	foodCategory string
	foodImage    string
	foodCarbs    float64
	foodProtein  float64
	foodFat      float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food to the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		food := model.FoodItem{
			Name:           foodName,
			Image:          foodImage,
			Category:       model.FoodCategory(foodCategory),
			CarbsPer100g:   foodCarbs,
			ProteinPer100g: foodProtein,
			FatPer100g:     foodFat,
		}
		if err := service.ValidateFood(food); err != nil {
			return fmt.Errorf("invalid food: %w", err)
		}
		return withStore(func(st *store.Store) error {
			added, err := service.AddFood(st, food)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s (%s)\n", added.Name, added.ID)
			return nil
		})
	},
}

var foodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a library food by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food := model.FoodItem{
			ID:             args[0],
			Name:           foodName,
			Image:          foodImage,
			Category:       model.FoodCategory(foodCategory),
			CarbsPer100g:   foodCarbs,
			ProteinPer100g: foodProtein,
			FatPer100g:     foodFat,
		}
		if err := service.ValidateFood(food); err != nil {
			return fmt.Errorf("invalid food: %w", err)
		}
		return withStore(func(st *store.Store) error {
			if err := service.UpdateFood(st, food); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food %s\n", args[0])
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a library food (past log entries keep their snapshots)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteFood(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fuel library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			foods, err := service.ListFoods(st)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tCATEGORY\tNAME\tC/100g\tP/100g\tF/100g")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\n",
					f.ID, f.Category, f.Name, f.CarbsPer100g, f.ProteinPer100g, f.FatPer100g)
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single library food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			f, ok, err := service.FoodByID(st, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("food %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", f.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", f.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", f.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "Carbs/100g: %.1f\nProtein/100g: %.1f\nFat/100g: %.1f\n",
				f.CarbsPer100g, f.ProteinPer100g, f.FatPer100g)
			fmt.Fprintf(cmd.OutOrStdout(), "Image: %s\n", f.Image)
			return nil
		})
	},
}

func addFoodFields(cmd *cobra.Command) {
	cmd.Flags().StringVar(&foodName, "name", "", "Food name")
	cmd.Flags().StringVar(&foodCategory, "category", "", "Category: Carb, Protein, Fat, or Liquid")
	cmd.Flags().StringVar(&foodImage, "image", "", "Image reference URL")
	cmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carb grams per 100g")
	cmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per 100g")
	cmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per 100g")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodUpdateCmd, foodDeleteCmd, foodListCmd, foodShowCmd)
	addFoodFields(foodAddCmd)
	addFoodFields(foodUpdateCmd)
}
