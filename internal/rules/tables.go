package rules

// Canned assistant replies
const (
	GroceryResponse      = "Check the Smart Shopping feature! Aldi is 22% cheaper than Whole Foods - that's $55/week saved for a family of 4. Shop Wednesday mornings for the best deals (extra 15% off). Try generic brands - they're 40% cheaper with same quality! 🛒"
	BatchCookingResponse = "Use the Batch Cooking Planner! Cook 3 lbs of chicken Sunday and use it for 4 meals. Saves $167/week vs takeout for family of 4. That's $715/month you can put in savings! Prep takes 3 hours on Sunday but saves 10+ hours during the week. 🍳"
	EmergencyResponse    = "Start with $20/week in emergency fund. In 6 months you'll have $520 - that's 1 month of groceries covered! Use ThriveMum's tracker to see your progress. Aim for 3-6 months of expenses. Keep it in a high-yield savings account earning 4.5% interest. 💰"
	InvestResponse       = "Start investing with just $50/month! Over 30 years at 7% return, that becomes $60,000. Use the Investment Simulator to see your growth. Open a Roth IRA - tax-free growth! Start with low-cost index funds like VTI. Time in market beats timing the market. 📈"
	DIYResponse          = "DIY projects save 60-80% vs hiring pros! Paint a room yourself: $45 vs $300. Install new faucet: $80 vs $250. Use the DIY Calculator to see your savings. YouTube has tutorials for everything. Start small - change light fixtures, paint furniture. 🔨"
	SavingResponse       = "Top 3 quick wins: 1) Switch to generic brands (saves $40/week), 2) Meal prep Sundays (saves $160/week), 3) Shop at Aldi (saves $55/week). That's $255/week = $13,260/year! Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings. 💵"
	DebtResponse         = "Pay off high-interest debt first (credit cards 18-25% APR). Use debt avalanche method - saves most on interest. Pay minimum on all, extra on highest APR. Or snowball method - smallest balance first for motivation. Consider 0% balance transfer cards. Aim to pay 3x minimum payment. 💳"
	MenuResponse         = "I can help you save money! Ask me about: 🛒 Smart shopping strategies, 🍳 Batch cooking to save $167/week, 💰 Building emergency fund, 📈 Starting to invest with $50/month, 🔨 DIY projects that save thousands, 💵 Quick budgeting tips. What interests you most?"
)

// Replies used when the remote call fails
const (
	FallbackGrocery = "Check the Smart Shopping screen - compare 5 stores with live prices. Aldi typically saves $40-60/week for a family of 4. Shop Wednesday mornings for extra 15% markdowns!"
	FallbackCook    = "Use Batch Cooking Planner - prep Sunday, eat all week. Family of 4 saves $167/week ($8,684/year) vs takeout. Takes just 3 hours Sunday!"
	FallbackDIY     = "Interior painting DIY: $120 vs $850 pro = $730 saved. Takes 1 weekend. Check Home Savings Calculator for 10 projects that save $3,000+/year."
	FallbackInvest  = "Once you have 3 months expenses saved, start investing $50-100/month in low-cost index funds (like Vanguard Total Stock Market). Check our Investment Guide for step-by-step setup."
	FallbackSave    = "Start small: $20/week = $1,040/year. Set up auto-transfer on payday. Build 3-month emergency fund first ($1,500-2,000), then start investing."
	FallbackDefault = "I can help with grocery savings, batch cooking, home DIY, budgeting, and investing. What area interests you most?"
)

var (
	defaultTable = NewTable(MenuResponse,
		Rule{Name: "groceries", Keywords: []string{"grocery", "shopping", "store"}, Response: GroceryResponse},
		Rule{Name: "batch-cooking", Keywords: []string{"batch cook", "meal", "cooking"}, Response: BatchCookingResponse},
		Rule{Name: "emergency-fund", Keywords: []string{"emergency", "fund"}, Response: EmergencyResponse},
		Rule{Name: "investing", Keywords: []string{"invest", "stock", "market"}, Response: InvestResponse},
		Rule{Name: "diy", Keywords: []string{"diy", "home", "project"}, Response: DIYResponse},
		Rule{Name: "saving", Keywords: []string{"save", "money", "budget"}, Response: SavingResponse},
		Rule{Name: "debt", Keywords: []string{"debt", "loan", "credit"}, Response: DebtResponse},
	)

	fallbackTable = NewTable(FallbackDefault,
		Rule{Name: "groceries", Keywords: []string{"grocery", "shop"}, Response: FallbackGrocery},
		Rule{Name: "batch-cooking", Keywords: []string{"cook", "meal"}, Response: FallbackCook},
		Rule{Name: "diy", Keywords: []string{"diy", "home"}, Response: FallbackDIY},
		Rule{Name: "investing", Keywords: []string{"invest"}, Response: FallbackInvest},
		Rule{Name: "saving", Keywords: []string{"save", "saving"}, Response: FallbackSave},
	)
)

// Default returns the full topic table used by the offline assistant
func Default() *Table {
	return defaultTable
}

// Fallback returns the reduced table used after a failed remote call
func Fallback() *Table {
	return fallbackTable
}

// QuickSuggestions are the canned questions offered on an empty conversation
func QuickSuggestions() []string {
	return []string{
		"How can I save on groceries?",
		"Best stores for savings?",
		"How to start investing?",
		"Batch cooking tips?",
		"Build emergency fund?",
	}
}
