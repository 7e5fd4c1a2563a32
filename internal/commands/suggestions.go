package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/thrivemum/internal/rules"
)

// NewSuggestionsCmd lists the quick questions offered by the chat screen
func NewSuggestionsCmd() *cobra.Command {
	var showTips, showTopics bool
	cmd := &cobra.Command{
		Use:   "suggestions",
		Short: "List quick questions",
		Long: `List the quick questions offered by the chat screen.

--tips lists every quick money-saving win; --topics lists what the offline
keyword table recognises.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case showTips:
				for _, tip := range rules.Tips() {
					fmt.Fprintf(out, "[%s] %s\n", tip.Category, tip)
				}
			case showTopics:
				for _, r := range rules.Default().Rules() {
					fmt.Fprintf(out, "%-15s %s\n", r.Name, strings.Join(r.Keywords, ", "))
				}
			default:
				for i, q := range rules.QuickSuggestions() {
					fmt.Fprintf(out, "%d. %s\n", i+1, q)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTips, "tips", false, "List quick money-saving wins")
	cmd.Flags().BoolVar(&showTopics, "topics", false, "List the topics the offline table answers")
	cmd.MarkFlagsMutuallyExclusive("tips", "topics")
	return cmd
}
