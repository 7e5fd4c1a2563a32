package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	apierrors "github.com/diogo/thrivemum/internal/errors"
	"github.com/diogo/thrivemum/internal/models"
)

// SDKClient generates content through the google.golang.org/genai SDK.
// It sends the same sampling and safety configuration as Client.
type SDKClient struct {
	client *genai.Client
	model  string
}

// Ensure SDKClient implements Generator
var _ Generator = (*SDKClient)(nil)

// NewSDKClient creates a Gemini API backend. baseURL is optional.
func NewSDKClient(ctx context.Context, apiKey, model, baseURL string) (*SDKClient, error) {
	if apiKey == "" {
		return nil, apierrors.ErrNoCredentials
	}
	if model == "" {
		model = models.DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &SDKClient{client: client, model: model}, nil
}

// generateConfig mirrors buildPayload for the SDK types
func generateConfig() *genai.GenerateContentConfig {
	temp := float32(models.Temperature)
	topK := float32(models.TopK)
	topP := float32(models.TopP)

	safety := make([]*genai.SafetySetting, 0, len(models.SafetyCategories))
	for _, category := range models.SafetyCategories {
		safety = append(safety, &genai.SafetySetting{
			Category:  genai.HarmCategory(category),
			Threshold: genai.HarmBlockThreshold(models.SafetyThreshold),
		})
	}

	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: int32(models.MaxOutputTokens),
		SafetySettings:  safety,
	}
}

// Generate sends prompt as a single user turn
func (s *SDKClient) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	res, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), generateConfig())
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", apierrors.NewAPIError(apiErr.Code, s.model, apiErr.Message)
		}
		return "", apierrors.NewNetworkError("generate content", s.model, err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", apierrors.NewParseError("no candidate text", PathCandText)
	}
	return text, nil
}
