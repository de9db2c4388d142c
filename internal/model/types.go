package model

import "time"

type Profile struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	DueDate      string   `json:"due_date"`
	Babies       int      `json:"babies"`
	Trimester    int      `json:"trimester"`
	PrePregnancy *float64 `json:"pre_pregnancy_weight"`
	HeightCm     *float64 `json:"height"`
	WeightKg     *float64 `json:"current_weight"`
}

type NutritionSummary struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsG        float64 `json:"carbs_g"`
	FatG          float64 `json:"fat_g"`
	FiberG        float64 `json:"fiber_g"`
	SugarG        float64 `json:"sugar_g"`
	SodiumMg      float64 `json:"sodium_mg"`
	CalciumMg     float64 `json:"calcium_mg"`
	IronMg        float64 `json:"iron_mg"`
	VitaminAMcg   float64 `json:"vitamin_a_mcg"`
	VitaminCMg    float64 `json:"vitamin_c_mg"`
	VitaminDMcg   float64 `json:"vitamin_d_mcg"`
	FolateMcg     float64 `json:"folate_mcg"`
}

type MacroTargets struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type MicronutrientTargets struct {
	FiberG      float64 `json:"fiber_g"`
	CalciumMg   float64 `json:"calcium_mg"`
	IronMg      float64 `json:"iron_mg"`
	FolateMcg   float64 `json:"folate_mcg"`
	VitaminDMcg float64 `json:"vitamin_d_mcg"`
	VitaminCMg  float64 `json:"vitamin_c_mg"`
	VitaminAMcg float64 `json:"vitamin_a_mcg"`
}

type NutritionTargets struct {
	Calories       float64              `json:"calories"`
	Macros         MacroTargets         `json:"macros"`
	Micronutrients MicronutrientTargets `json:"micronutrients"`
	WaterML        float64              `json:"water_ml"`
}

// Pregnancy safety classification the backend attaches to every search hit.
const (
	SafetySafe    = "safe"
	SafetyLimited = "limited"
	SafetyAvoid   = "avoid"
)

type FoodSearchResult struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	ServingSize  float64 `json:"serving_size"`
	ServingUnit  string  `json:"serving_unit"`
	Calories     float64 `json:"calories"`
	SafetyStatus string  `json:"safety_status"`
	SafetyNotes  string  `json:"safety_notes,omitempty"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	Source       string  `json:"source,omitempty"`
	ItemType     string  `json:"item_type,omitempty"`
}

type FoodLogInput struct {
	FoodID      string    `json:"food_id"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	Quantity    float64   `json:"quantity,omitempty"`
	ConsumedAt  time.Time `json:"consumed_at"`
	MealType    string    `json:"meal_type,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type JournalEntryInput struct {
	EntryDate    string   `json:"entry_date"`
	Symptoms     []string `json:"symptoms,omitempty"`
	Mood         *int     `json:"mood,omitempty"`
	Cravings     string   `json:"cravings,omitempty"`
	SleepQuality *int     `json:"sleep_quality,omitempty"`
	EnergyLevel  *int     `json:"energy_level,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type JournalEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EntryDate    string    `json:"entry_date"`
	Symptoms     []string  `json:"symptoms"`
	Mood         *int      `json:"mood"`
	Cravings     string    `json:"cravings"`
	SleepQuality *int      `json:"sleep_quality"`
	EnergyLevel  *int      `json:"energy_level"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
