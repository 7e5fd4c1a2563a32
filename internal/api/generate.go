package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/thrivemum/internal/errors"
	"github.com/diogo/thrivemum/internal/models"
)

// maxBodySize caps how much of a response is read
const maxBodySize = 1 << 20

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

// buildPayload creates the JSON body for a single-turn generate request
func buildPayload(prompt string) ([]byte, error) {
	safety := make([]safetySetting, 0, len(models.SafetyCategories))
	for _, category := range models.SafetyCategories {
		safety = append(safety, safetySetting{Category: category, Threshold: models.SafetyThreshold})
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     models.Temperature,
			TopK:            models.TopK,
			TopP:            models.TopP,
			MaxOutputTokens: models.MaxOutputTokens,
		},
		SafetySettings: safety,
	}

	return json.Marshal(req)
}

// Generate issues exactly one POST and returns the first candidate's text
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if err := c.ensureCredentials(); err != nil {
		return "", err
	}

	payload, err := buildPayload(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	target, err := c.requestURL()
	if err != nil {
		return "", fmt.Errorf("failed to build request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("generate content", c.endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", apierrors.NewNetworkError("read response", c.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := http.StatusText(resp.StatusCode)
		if gjson.ValidBytes(body) {
			if m := gjson.GetBytes(body, PathErrorMessage).String(); m != "" {
				message = m
			}
		}
		return "", apierrors.NewAPIError(resp.StatusCode, c.endpoint, message)
	}

	return parseResponse(body)
}

// parseResponse extracts the candidate text from a generateContent body
func parseResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	text := gjson.GetBytes(body, PathCandText)
	if !text.Exists() || text.Type != gjson.String {
		if reason := gjson.GetBytes(body, PathBlockReason).String(); reason != "" {
			return "", apierrors.NewParseError("prompt blocked: "+reason, PathBlockReason)
		}
		return "", apierrors.NewParseError("no candidate text", PathCandText)
	}

	trimmed := strings.TrimSpace(text.String())
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty candidate text", apierrors.ErrNoContent)
	}
	return trimmed, nil
}
