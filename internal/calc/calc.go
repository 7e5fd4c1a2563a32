// Package calc implements the static savings calculators.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Annual return assumed by the investment simulator
const AnnualReturn = 0.07

// Weeks used to reach the emergency fund target
const EmergencyWeeks = 26

// EmergencyMonths of expenses the fund should cover
const EmergencyMonths = 3

// GrocerySavingRate is the suggested share of the weekly budget to save
const GrocerySavingRate = 0.10

// ParseAmount keeps digits and dots and parses the result. Anything that does
// not parse to a finite number yields 0.
func ParseAmount(s string) float64 {
	return parse(s, func(r rune) bool { return r >= '0' && r <= '9' || r == '.' })
}

// ParseCount keeps digits only
func ParseCount(s string) int {
	return int(parse(s, func(r rune) bool { return r >= '0' && r <= '9' }))
}

func parse(s string, keep func(rune) bool) float64 {
	var b strings.Builder
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Swap is a cheaper alternative to a common family meal
type Swap struct {
	Meal    string
	Regular float64
	Budget  float64
}

// Saving per serving
func (s Swap) Saving() float64 {
	return s.Regular - s.Budget
}

// Swaps returns the budget meal swaps
func Swaps() []Swap {
	return []Swap{
		{Meal: "Chicken stir-fry", Regular: 9.50, Budget: 7.20},
		{Meal: "Pasta night", Regular: 8.00, Budget: 5.60},
		{Meal: "Taco bowls", Regular: 10.20, Budget: 7.90},
	}
}

// GroceryPlan is the result of the grocery calculator
type GroceryPlan struct {
	WeeklyBudget float64
	FamilySize   int
	PerPerson    float64
	WeeklySaving float64
	YearlySaving float64
	Swaps        []Swap
}

// Grocery splits a weekly budget across the family
func Grocery(weeklyBudget float64, familySize int) GroceryPlan {
	weeklyBudget = math.Max(finite(weeklyBudget), 0)
	plan := GroceryPlan{
		WeeklyBudget: weeklyBudget,
		FamilySize:   familySize,
		WeeklySaving: weeklyBudget * GrocerySavingRate,
		Swaps:        Swaps(),
	}
	if familySize > 0 {
		plan.PerPerson = weeklyBudget / float64(familySize)
	}
	plan.YearlySaving = plan.WeeklySaving * 52
	return plan
}

// EmergencyPlan is the result of the emergency fund calculator
type EmergencyPlan struct {
	MonthlyExpenses float64
	Target          float64
	Weekly          float64
	Weeks           int
	Progress        float64
}

// EmergencyFund sizes a three-month fund reached in 26 weekly steps
func EmergencyFund(monthlyExpenses float64) EmergencyPlan {
	monthlyExpenses = math.Max(finite(monthlyExpenses), 0)
	target := monthlyExpenses * EmergencyMonths
	plan := EmergencyPlan{
		MonthlyExpenses: monthlyExpenses,
		Target:          target,
		Weekly:          target / EmergencyWeeks,
		Weeks:           EmergencyWeeks,
	}
	if target > 0 {
		plan.Progress = math.Min(1, plan.Weekly*EmergencyWeeks/target)
	}
	return plan
}

// InvestmentPlan is the result of the investment simulator
type InvestmentPlan struct {
	Monthly     float64
	Years       int
	Contributed float64
	FutureValue float64
	Growth      float64
}

// InvestmentGrowth returns the future value of a fixed monthly contribution
// compounded monthly at AnnualReturn.
func InvestmentGrowth(monthly float64, years int) InvestmentPlan {
	monthly = math.Max(finite(monthly), 0)
	if years < 0 {
		years = 0
	}
	months := years * 12
	plan := InvestmentPlan{
		Monthly:     monthly,
		Years:       years,
		Contributed: monthly * float64(months),
	}
	if monthly == 0 || months == 0 {
		return plan
	}

	rate := AnnualReturn / 12
	plan.FutureValue = monthly * (math.Pow(1+rate, float64(months)) - 1) / rate
	plan.Growth = plan.FutureValue - plan.Contributed
	return plan
}

// ClampYears limits a horizon to the 1 to 10 year range the simulator offers
func ClampYears(years int) int {
	switch {
	case years < 1:
		return 1
	case years > 10:
		return 10
	default:
		return years
	}
}
