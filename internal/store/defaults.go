package store

import "github.com/saadjs/apexfuel/internal/model"

// DefaultFoods seeds the library on first run. Densities are per 100g.
func DefaultFoods() []model.FoodItem {
	return []model.FoodItem{
		{ID: "f1", Name: "Rice (cooked)", Image: "https://picsum.photos/100/100?random=1", Category: model.CategoryCarb, CarbsPer100g: 28, ProteinPer100g: 2.7, FatPer100g: 0.3},
		{ID: "f2", Name: "Potato (boiled)", Image: "https://picsum.photos/100/100?random=2", Category: model.CategoryCarb, CarbsPer100g: 20, ProteinPer100g: 1.9, FatPer100g: 0.1},
		{ID: "f3", Name: "Oats (raw)", Image: "https://picsum.photos/100/100?random=3", Category: model.CategoryCarb, CarbsPer100g: 66, ProteinPer100g: 17, FatPer100g: 7},
		{ID: "f4", Name: "Sweet potato", Image: "https://picsum.photos/100/100?random=4", Category: model.CategoryCarb, CarbsPer100g: 20, ProteinPer100g: 1.6, FatPer100g: 0.1},
		{ID: "f4_1", Name: "Steamed bun / noodles", Image: "https://picsum.photos/100/100?random=41", Category: model.CategoryCarb, CarbsPer100g: 50, ProteinPer100g: 7, FatPer100g: 1},

		{ID: "f5", Name: "Chicken breast (cooked)", Image: "https://picsum.photos/100/100?random=5", Category: model.CategoryProtein, CarbsPer100g: 0, ProteinPer100g: 31, FatPer100g: 3.6},
		{ID: "f6", Name: "Steak / lean beef", Image: "https://picsum.photos/100/100?random=6", Category: model.CategoryProtein, CarbsPer100g: 0, ProteinPer100g: 26, FatPer100g: 10},
		{ID: "f7", Name: "Whole egg", Image: "https://picsum.photos/100/100?random=7", Category: model.CategoryProtein, CarbsPer100g: 1.1, ProteinPer100g: 13, FatPer100g: 11},
		{ID: "f8", Name: "Whey protein (scoop)", Image: "https://picsum.photos/100/100?random=8", Category: model.CategoryProtein, CarbsPer100g: 3, ProteinPer100g: 24, FatPer100g: 1},
		{ID: "f8_1", Name: "Lean pork", Image: "https://picsum.photos/100/100?random=81", Category: model.CategoryProtein, CarbsPer100g: 0, ProteinPer100g: 20, FatPer100g: 15},

		{ID: "f9", Name: "Almonds / mixed nuts", Image: "https://picsum.photos/100/100?random=9", Category: model.CategoryFat, CarbsPer100g: 22, ProteinPer100g: 21, FatPer100g: 49},
		{ID: "f10", Name: "Peanut butter", Image: "https://picsum.photos/100/100?random=10", Category: model.CategoryFat, CarbsPer100g: 20, ProteinPer100g: 25, FatPer100g: 50},
		{ID: "f11", Name: "Avocado", Image: "https://picsum.photos/100/100?random=11", Category: model.CategoryFat, CarbsPer100g: 9, ProteinPer100g: 2, FatPer100g: 15},

		{ID: "f12", Name: "Zero cola / energy drink", Image: "https://picsum.photos/100/100?random=12", Category: model.CategoryLiquid, CarbsPer100g: 0, ProteinPer100g: 0, FatPer100g: 0},
		{ID: "f13", Name: "Skim milk", Image: "https://picsum.photos/100/100?random=13", Category: model.CategoryLiquid, CarbsPer100g: 5, ProteinPer100g: 3.4, FatPer100g: 0.1},
	}
}

// DefaultChecklists seeds the pit-stop checklists on first run.
func DefaultChecklists() []model.ChecklistCategory {
	return []model.ChecklistCategory{
		{
			ID:             "leg_day",
			Title:          "Leg Day",
			Icon:           "Weight",
			ResetFrequency: model.ResetDaily,
			Items: []model.ChecklistItem{
				{ID: "l1", Text: "Knee sleeves"},
				{ID: "l2", Text: "Lifting belt"},
				{ID: "l3", Text: "Squat shoes"},
				{ID: "l4", Text: "Creatine"},
				{ID: "l5", Text: "Pre-workout"},
			},
		},
		{
			ID:             "push_day",
			Title:          "Push Day",
			Icon:           "Dumbbell",
			ResetFrequency: model.ResetDaily,
			Items: []model.ChecklistItem{
				{ID: "p1", Text: "Wrist wraps"},
				{ID: "p2", Text: "Elbow sleeves"},
				{ID: "p3", Text: "Towel and bottle"},
			},
		},
		{
			ID:             "cardio",
			Title:          "Cardio / Outdoor",
			Icon:           "Mountain",
			ResetFrequency: model.ResetDaily,
			Items: []model.ChecklistItem{
				{ID: "h1", Text: "HR strap / watch"},
				{ID: "h2", Text: "Earbuds"},
				{ID: "h3", Text: "Electrolyte water"},
			},
		},
	}
}
