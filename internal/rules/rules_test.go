package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_Topics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"grocery keyword", "grocery run tonight", GroceryResponse},
		{"groceries is not grocery", "How can I save on groceries?", SavingResponse},
		{"shopping keyword", "SHOPPING on a budget", GroceryResponse},
		{"store keyword", "Best stores for savings?", GroceryResponse},
		{"batch cook", "batch cook ideas", BatchCookingResponse},
		{"meal", "Cheap meal ideas", BatchCookingResponse},
		{"emergency", "Build emergency fund?", EmergencyResponse},
		{"invest", "How to start investing?", InvestResponse},
		{"stock", "Are stocks risky", InvestResponse},
		{"diy", "Any DIY tips", DIYResponse},
		{"home", "fix my home", DIYResponse},
		{"save", "I want to save", SavingResponse},
		{"budget", "help me budget", SavingResponse},
		{"debt", "pay off debt", DebtResponse},
		{"credit", "Credit card help", DebtResponse},
		{"no match", "hello there", MenuResponse},
		{"empty", "", MenuResponse},
	}

	table := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Respond(tt.input))
		})
	}
}

func TestDefaultTable_GroceryKeywordsAnyCase(t *testing.T) {
	table := Default()
	for _, kw := range []string{"grocery", "shopping", "store"} {
		for _, variant := range []string{kw, strings.ToUpper(kw), "x" + kw + "y", "Where is the " + strings.ToUpper(kw[:1]) + kw[1:]} {
			assert.Equal(t, GroceryResponse, table.Respond(variant), "input %q", variant)
		}
	}
}

func TestDefaultTable_FirstMatchWins(t *testing.T) {
	// "fund" (emergency) and "invest" (investing) both match; emergency is earlier.
	assert.Equal(t, EmergencyResponse, Default().Respond("invest my fund"))
	// substring match has no word boundary: "homemade" hits the DIY rule.
	assert.Equal(t, DIYResponse, Default().Respond("homemade bread"))
	// "meal" precedes "save".
	assert.Equal(t, BatchCookingResponse, Default().Respond("save on meals"))
}

func TestDefaultTable_InvestExample(t *testing.T) {
	got := Default().Respond("How to start investing?")
	assert.True(t, strings.HasPrefix(got, "Start investing with just $50/month!"))
}

func TestFallbackTable(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"grocery list", FallbackGrocery},
		{"where to shop", FallbackGrocery},
		{"cooking tips", FallbackCook},
		{"meal plan", FallbackCook},
		{"home repair", FallbackDIY},
		{"investing 101", FallbackInvest},
		{"saving plan", FallbackSave},
		{"debt", FallbackDefault},
		{"", FallbackDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Fallback().Respond(tt.input))
		})
	}
}

func TestFallbackTable_IsSubsetOfTopics(t *testing.T) {
	topics := map[string]bool{}
	for _, r := range Default().Rules() {
		topics[r.Name] = true
	}
	for _, r := range Fallback().Rules() {
		assert.True(t, topics[r.Name], "fallback rule %q has no matching topic", r.Name)
	}
	assert.Less(t, Fallback().Len(), Default().Len())
}

func TestNewTable_FoldsKeywords(t *testing.T) {
	table := NewTable("none", Rule{Name: "x", Keywords: []string{"MiXeD"}, Response: "hit"})

	r, ok := table.Match("some mixed input")
	require.True(t, ok)
	assert.Equal(t, "x", r.Name)
	assert.Equal(t, "none", table.Respond("nothing"))
	assert.Equal(t, "none", table.Default())
}

func TestTable_RulesReturnsCopy(t *testing.T) {
	table := Default()
	rules := table.Rules()
	rules[0] = Rule{Name: "mutated"}

	assert.Equal(t, "groceries", table.Rules()[0].Name)
	assert.Equal(t, 7, table.Len())
}

func TestQuickSuggestions(t *testing.T) {
	s := QuickSuggestions()
	require.Len(t, s, 5)
	for _, q := range s {
		_, ok := Default().Match(q)
		assert.True(t, ok, "suggestion %q should hit a topic", q)
	}
}

func TestTipOfTheDay(t *testing.T) {
	morning := time.Date(2026, 3, 14, 7, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 14, 22, 30, 0, 0, time.Local)
	nextDay := morning.AddDate(0, 0, 1)

	assert.Equal(t, TipOfTheDay(morning), TipOfTheDay(evening))
	assert.NotEqual(t, TipOfTheDay(morning), TipOfTheDay(nextDay))

	tip := TipOfTheDay(morning)
	assert.Contains(t, tip.String(), tip.Text)
	assert.Contains(t, tip.String(), "("+tip.Savings+")")
}

func TestTips_ReturnsCopy(t *testing.T) {
	tips := Tips()
	require.NotEmpty(t, tips)
	tips[0].Text = "changed"
	assert.NotEqual(t, "changed", Tips()[0].Text)
}
