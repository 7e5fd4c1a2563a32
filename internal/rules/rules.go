// Package rules holds the ordered keyword tables behind the assistant's canned replies.
package rules

import "strings"

// Rule maps a keyword set to a canned response
type Rule struct {
	Name     string
	Keywords []string
	Response string
}

// matches reports whether any keyword occurs in the already case-folded input
func (r Rule) matches(folded string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// Table is an immutable ordered list of rules with a default reply.
// Rules are scanned top to bottom and the first match wins.
type Table struct {
	rules    []Rule
	fallback string
}

// NewTable builds a table from rules in priority order.
// Keywords are lower-cased so matching only has to fold the input.
func NewTable(defaultResponse string, rules ...Rule) *Table {
	copied := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		copied[i] = Rule{Name: r.Name, Keywords: kws, Response: r.Response}
	}
	return &Table{rules: copied, fallback: defaultResponse}
}

// Match returns the first rule with a keyword contained in text
func (t *Table) Match(text string) (Rule, bool) {
	folded := strings.ToLower(text)
	for _, r := range t.rules {
		if r.matches(folded) {
			return r, true
		}
	}
	return Rule{}, false
}

// Respond returns the matched rule's response or the table default
func (t *Table) Respond(text string) string {
	if r, ok := t.Match(text); ok {
		return r.Response
	}
	return t.fallback
}

// Default returns the reply used when nothing matches
func (t *Table) Default() string {
	return t.fallback
}

// Len returns the number of rules
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in priority order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}
