package model

// FoodCategory is the macro bucket a library food belongs to.
type FoodCategory string

const (
	CategoryCarb    FoodCategory = "Carb"
	CategoryProtein FoodCategory = "Protein"
	CategoryFat     FoodCategory = "Fat"
	CategoryLiquid  FoodCategory = "Liquid"
)

// ResetFrequency controls when a checklist category's items are unchecked.
type ResetFrequency string

const (
	ResetDaily  ResetFrequency = "DAILY"
	ResetManual ResetFrequency = "MANUAL"
)

type FoodItem struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Image          string       `json:"image"`
	Category       FoodCategory `json:"category"`
	CarbsPer100g   float64      `json:"carbsPer100g"`
	ProteinPer100g float64      `json:"proteinPer100g"`
	FatPer100g     float64      `json:"fatPer100g"`
}

// LogEntry is an immutable historical fact: it snapshots the food name and
// resolved gram amounts at creation time, so deleting the referenced food
// never changes past days.
type LogEntry struct {
	ID          string `json:"id"`
	FoodID      string `json:"foodId"`
	FoodName    string `json:"foodName"`
	Timestamp   int64  `json:"timestamp"`
	WeightGrams int    `json:"weightGrams"`
	Carbs       int    `json:"carbs"`
	Protein     int    `json:"protein"`
	Fat         int    `json:"fat"`
}

// DailyLog holds one calendar day's entries in insertion order plus derived
// totals. Totals are recomputed from the full entry list on every mutation,
// never adjusted incrementally.
type DailyLog struct {
	Date         string     `json:"date"`
	Entries      []LogEntry `json:"entries"`
	TotalCarbs   int        `json:"totalCarbs"`
	TotalProtein int        `json:"totalProtein"`
	TotalFat     int        `json:"totalFat"`
}

type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type ChecklistCategory struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Icon           string          `json:"icon"`
	ResetFrequency ResetFrequency  `json:"resetFrequency"`
	Items          []ChecklistItem `json:"items"`
}
