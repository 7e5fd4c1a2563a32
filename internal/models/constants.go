// Package models contains data types and constants for the coaching assistant.
package models

// DefaultEndpoint is the generateContent endpoint used when none is configured
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// DefaultModel is the model name used by the SDK backend
const DefaultModel = "gemini-1.5-flash"

// Sampling configuration sent with every generate request
const (
	Temperature     = 0.7
	TopK            = 40
	TopP            = 0.95
	MaxOutputTokens = 200
)

// SafetyThreshold is applied to every harm category in SafetyCategories
const SafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"

// SafetyCategories lists the harm categories sent as request parameters.
// They are not enforced locally.
var SafetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// Backends selectable in configuration
const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)
