package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/thrivemum/internal/calc"
)

var (
	calcTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	calcLabelStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	calcValueStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

// NewCalcCmd creates the calculator command group
func NewCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Savings calculators",
		Long: `Quick calculators for groceries, emergency funds, investing and the
onboarding savings estimate.

Amounts accept loose input such as "$1,200" or "150".`,
	}
	cmd.AddCommand(newGroceryCalcCmd(), newEmergencyCalcCmd(), newInvestCalcCmd(), newOnboardingCalcCmd())
	return cmd
}

func newGroceryCalcCmd() *cobra.Command {
	var budget, family string
	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Split a weekly grocery budget and suggest cheaper meals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := calc.Grocery(calc.ParseAmount(budget), calc.ParseCount(family))
			printGrocery(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	cmd.Flags().StringVar(&budget, "budget", "150", "Weekly grocery budget")
	cmd.Flags().StringVar(&family, "family", "4", "Family size")
	return cmd
}

func newEmergencyCalcCmd() *cobra.Command {
	var expenses string
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Size a three-month emergency fund",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printEmergency(cmd.OutOrStdout(), calc.EmergencyFund(calc.ParseAmount(expenses)))
			return nil
		},
	}
	cmd.Flags().StringVar(&expenses, "expenses", "2000", "Monthly expenses")
	return cmd
}

func newInvestCalcCmd() *cobra.Command {
	var monthly string
	var years int
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Project growth of a monthly index fund contribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := calc.InvestmentGrowth(calc.ParseAmount(monthly), calc.ClampYears(years))
			printInvestment(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	cmd.Flags().StringVar(&monthly, "monthly", "50", "Monthly contribution")
	cmd.Flags().IntVar(&years, "years", 10, "Years to invest (1-10)")
	return cmd
}

func newOnboardingCalcCmd() *cobra.Command {
	var groceries, eatsOut string
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Estimate monthly savings from the onboarding answers",
		Long: fmt.Sprintf(`Estimate what smarter shopping and cooking at home could save each month.

Grocery bands:  %s
Eating out:     %s`, strings.Join(calc.GroceryBands, ", "), strings.Join(calc.EatsOutBands, ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			est := calc.OnboardingEstimate(
				matchBand(groceries, calc.GroceryBands),
				matchBand(eatsOut, calc.EatsOutBands),
			)
			printEstimate(cmd.OutOrStdout(), est)
			return nil
		},
	}
	cmd.Flags().StringVar(&groceries, "groceries", "$200-300", "Weekly grocery spend band")
	cmd.Flags().StringVar(&eatsOut, "eats-out", "2-3 times", "How often the family eats out each week")
	return cmd
}

// matchBand resolves loose input such as "200-300" or "2-3" to a listed band.
// Input that matches nothing is returned unchanged.
func matchBand(input string, bands []string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	in = strings.TrimPrefix(in, "$")
	if in == "" {
		return input
	}
	for _, band := range bands {
		b := strings.TrimPrefix(strings.ToLower(band), "$")
		if b == in || strings.HasPrefix(b, in+" ") {
			return band
		}
	}
	return input
}

func printRow(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", calcLabelStyle.Render(fmt.Sprintf("%-22s", label)), calcValueStyle.Render(value))
}

func printGrocery(w io.Writer, plan calc.GroceryPlan) {
	fmt.Fprintln(w, calcTitleStyle.Render("Grocery budget"))
	printRow(w, "Weekly budget", calc.Dollars(plan.WeeklyBudget))
	printRow(w, "Family size", fmt.Sprintf("%d", plan.FamilySize))
	printRow(w, "Per person", calc.Cents(plan.PerPerson))
	printRow(w, "Save 10% each week", calc.Cents(plan.WeeklySaving))
	printRow(w, "That's per year", calc.Dollars(plan.YearlySaving))

	fmt.Fprintln(w)
	fmt.Fprintln(w, calcTitleStyle.Render("Budget meal swaps (per serving)"))
	for _, s := range plan.Swaps {
		printRow(w, s.Meal, fmt.Sprintf("%s → %s (save %s)", calc.Cents(s.Regular), calc.Cents(s.Budget), calc.Cents(s.Saving())))
	}
}

func printEmergency(w io.Writer, plan calc.EmergencyPlan) {
	fmt.Fprintln(w, calcTitleStyle.Render("Emergency fund"))
	printRow(w, "Monthly expenses", calc.Dollars(plan.MonthlyExpenses))
	printRow(w, "Target (3 months)", calc.Dollars(plan.Target))
	printRow(w, "Save each week", calc.Cents(plan.Weekly))
	printRow(w, "Weeks to target", fmt.Sprintf("%d", plan.Weeks))
	printRow(w, "Progress after plan", calc.Percent(plan.Progress))
	fmt.Fprintln(w, "  "+progressBar(plan.Progress, 26))
}

func printInvestment(w io.Writer, plan calc.InvestmentPlan) {
	fmt.Fprintln(w, calcTitleStyle.Render("Index fund growth (7% a year)"))
	printRow(w, "Monthly contribution", calc.Dollars(plan.Monthly))
	printRow(w, "Years", fmt.Sprintf("%d", plan.Years))
	printRow(w, "You put in", calc.Dollars(plan.Contributed))
	printRow(w, "Projected value", calc.Dollars(plan.FutureValue))
	printRow(w, "Growth", calc.Dollars(plan.Growth))
}

func printEstimate(w io.Writer, est calc.Estimate) {
	fmt.Fprintln(w, calcTitleStyle.Render("Your estimated savings"))
	printRow(w, "Smarter grocery shopping", calc.Dollars(est.Grocery)+"/month")
	printRow(w, "Meal prep vs eating out", calc.Dollars(est.MealPrep)+"/month")
	printRow(w, "Total", calc.Dollars(est.Total)+"/month")
	printRow(w, "That's per year", calc.Dollars(est.Yearly))
}

// progressBar draws ratio (0..1) as a fixed-width bar
func progressBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(colorSuccess).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(colorTextMute).Render(strings.Repeat("░", width-filled))
}
