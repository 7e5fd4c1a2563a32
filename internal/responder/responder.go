// Package responder resolves a user's question into the assistant's reply.
package responder

import (
	"context"

	"github.com/diogo/thrivemum/internal/models"
)

// Responder turns the newest user text plus prior turns into a reply.
// Implementations never fail: errors are absorbed into a fallback reply.
type Responder interface {
	Respond(ctx context.Context, text string, history []models.Message) string
}

// Func adapts a plain function to Responder
type Func func(ctx context.Context, text string, history []models.Message) string

// Respond calls f
func (f Func) Respond(ctx context.Context, text string, history []models.Message) string {
	return f(ctx, text, history)
}
