package rules

import "time"

// Tip is a quick money-saving win
type Tip struct {
	Category string
	Text     string
	Savings  string
}

func (t Tip) String() string {
	return t.Text + " (" + t.Savings + ")"
}

var quickWins = []Tip{
	{"Groceries", "Shop Aldi or Walmart for basics", "$40-60/week"},
	{"Groceries", "Buy store brands instead of name brands", "$25-35/week"},
	{"Groceries", "Meal plan before shopping", "$30-50/week"},
	{"Groceries", "Shop Wednesday mornings for markdowns", "$20-30/week"},
	{"Groceries", "Batch cook on Sundays", "$100+/week"},
	{"Utilities", "Programmable thermostat (68°F winter, 78°F summer)", "$30-50/month"},
	{"Utilities", "Wash clothes in cold water", "$8-12/month"},
	{"Subscriptions", "Cancel unused streaming services", "$15-30/month"},
	{"Subscriptions", "Review bank fees, switch to free checking", "$12-25/month"},
	{"Kids", "Buy kids clothes at thrift stores", "$50-80/month"},
	{"Kids", "Pack lunches 4 days/week", "$60-100/month"},
	{"Transportation", "Combine errands into one trip", "$20-35/month"},
	{"Entertainment", "Potluck dinners instead of restaurants", "$60-100/month"},
	{"Entertainment", "Game nights at home", "$50-80/month"},
}

// Tips returns every quick win
func Tips() []Tip {
	out := make([]Tip, len(quickWins))
	copy(out, quickWins)
	return out
}

// TipOfTheDay picks a tip from the calendar date of t, so every call on the
// same day returns the same tip.
func TipOfTheDay(t time.Time) Tip {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
	return quickWins[int(day)%len(quickWins)]
}
