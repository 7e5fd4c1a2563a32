package responder

import (
	"context"

	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/rules"
)

// Local answers from a keyword rule table. It ignores history and has no side effects.
type Local struct {
	table *rules.Table
}

// NewLocal creates a Local responder. A nil table selects rules.Default().
func NewLocal(table *rules.Table) *Local {
	if table == nil {
		table = rules.Default()
	}
	return &Local{table: table}
}

// Respond returns the first matching rule's reply or the menu reply
func (l *Local) Respond(_ context.Context, text string, _ []models.Message) string {
	return l.table.Respond(text)
}
