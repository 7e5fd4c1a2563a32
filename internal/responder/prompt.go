package responder

import (
	"strings"

	"github.com/diogo/thrivemum/internal/models"
)

const systemContext = `You are a financial assistant for ThriveMum, an app helping busy moms in the US/UK save money and grow their finances. 

Your role:
- Give SPECIFIC, actionable advice with exact numbers and steps
- Focus on: grocery savings, batch cooking, home DIY, emergency funds, beginner investing
- Use a warm, supportive tone - like a helpful friend
- Keep responses under 80 words
- Mention ThriveMum features when relevant (Smart Shopping, Batch Cooking Planner, DIY Calculator, Investment Guide)

Examples of good responses:
- "Check the Smart Shopping feature - Aldi is 22% cheaper than Whole Foods right now. For a family of 4, that's $40-60 saved weekly!"
- "Start with $20/week in emergency fund. Use ThriveMum's tracker. In 6 months you'll have $520 - that's 1 month of groceries covered."
- "Try the Batch Cooking Planner - prep Sunday's chicken for 3 meals. Saves $167/week vs takeout for family of 4."

Keep it practical, specific, and encouraging.`

const replyCue = "Assistant (give specific, actionable advice with numbers):"

// BuildPrompt embeds the persona preamble, the role-labelled history in order,
// and the new user text into one prompt string.
func BuildPrompt(text string, history []models.Message) string {
	var b strings.Builder
	b.WriteString(systemContext)
	b.WriteString("\n\nPrevious conversation:\n")

	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, m.Role.Label()+": "+m.Text)
	}
	b.WriteString(strings.Join(lines, "\n"))

	b.WriteString("\n\nUser: ")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(replyCue)
	return b.String()
}
