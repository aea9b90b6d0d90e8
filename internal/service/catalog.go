package service

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/store"
)

// ValidateFood checks the fields of a library food before it reaches the
// catalog. The catalog itself does no validation; entries that already
// reference a food are never re-checked (they snapshot their own macros).
func ValidateFood(food model.FoodItem) error {
	return validation.ValidateStruct(&food,
		validation.Field(&food.Name, validation.Required),
		validation.Field(&food.Category, validation.Required, validation.In(
			model.CategoryCarb, model.CategoryProtein, model.CategoryFat, model.CategoryLiquid,
		)),
		validation.Field(&food.CarbsPer100g, validation.Min(0.0)),
		validation.Field(&food.ProteinPer100g, validation.Min(0.0)),
		validation.Field(&food.FatPer100g, validation.Min(0.0)),
	)
}

// AddFood prepends a food to the library, assigning an id when absent, and
// persists the full list.
func AddFood(st *store.Store, food model.FoodItem) (model.FoodItem, error) {
	if err := ensureReady(st); err != nil {
		return model.FoodItem{}, err
	}
	if food.ID == "" {
		food.ID = uuid.NewString()
	}
	foods, _, err := st.Foods()
	if err != nil {
		return model.FoodItem{}, err
	}
	foods = append([]model.FoodItem{food}, foods...)
	if err := st.PutFoods(foods); err != nil {
		return model.FoodItem{}, err
	}
	return food, nil
}

// UpdateFood replaces the food with the matching id. An unknown id changes
// nothing.
func UpdateFood(st *store.Store, food model.FoodItem) error {
	if err := ensureReady(st); err != nil {
		return err
	}
	foods, _, err := st.Foods()
	if err != nil {
		return err
	}
	for i := range foods {
		if foods[i].ID == food.ID {
			foods[i] = food
			break
		}
	}
	return st.PutFoods(foods)
}

// DeleteFood removes the food with the matching id. Historical log entries
// referencing it are untouched by design.
func DeleteFood(st *store.Store, id string) error {
	if err := ensureReady(st); err != nil {
		return err
	}
	foods, _, err := st.Foods()
	if err != nil {
		return err
	}
	kept := make([]model.FoodItem, 0, len(foods))
	for _, f := range foods {
		if f.ID == id {
			continue
		}
		kept = append(kept, f)
	}
	return st.PutFoods(kept)
}

func ListFoods(st *store.Store) ([]model.FoodItem, error) {
	foods, _, err := st.Foods()
	return foods, err
}

func FoodByID(st *store.Store, id string) (model.FoodItem, bool, error) {
	foods, _, err := st.Foods()
	if err != nil {
		return model.FoodItem{}, false, err
	}
	for _, f := range foods {
		if f.ID == id {
			return f, true, nil
		}
	}
	return model.FoodItem{}, false, nil
}
