package calc

// GroceryBands are the weekly grocery spend answers offered by the onboarding quiz
var GroceryBands = []string{"$100-150", "$150-200", "$200-300", "$300-400", "$400+"}

// EatsOutBands are the eating-out frequency answers offered by the onboarding quiz
var EatsOutBands = []string{"Rarely", "1-2 times", "2-3 times", "3-4 times", "4+ times"}

// monthly savings per band; bands not listed save nothing
var (
	grocerySavings = map[string]float64{
		"$150-200": 35,
		"$200-300": 55,
		"$300-400": 75,
		"$400+":    95,
	}
	mealPrepSavings = map[string]float64{
		"1-2 times": 120,
		"2-3 times": 180,
		"3-4 times": 240,
		"4+ times":  300,
	}
)

// Estimate is the monthly saving projected from the onboarding answers
type Estimate struct {
	Grocery  float64
	MealPrep float64
	Total    float64
	Yearly   float64
}

// OnboardingEstimate projects monthly savings from smarter shopping and
// cooking at home. An unknown band contributes 0.
func OnboardingEstimate(groceryBand, eatsOutBand string) Estimate {
	e := Estimate{
		Grocery:  grocerySavings[groceryBand],
		MealPrep: mealPrepSavings[eatsOutBand],
	}
	e.Total = e.Grocery + e.MealPrep
	e.Yearly = e.Total * 12
	return e
}
