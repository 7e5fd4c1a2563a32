// Package api provides the generative-language client used by the remote responder.
package api

// GJSON paths for extracting values from generateContent responses.
const (
	PathCandText     = "candidates.0.content.parts.0.text"
	PathErrorMessage = "error.message"
	PathBlockReason  = "promptFeedback.blockReason"
)
