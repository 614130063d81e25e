package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerationTimeout is the hard wall-clock ceiling for a single generative
// call. The caller gets a typed failure instead of a hanging request.
const GenerationTimeout = 30 * time.Second

// GenerationClientInterface invokes the external generative model with a
// compiled prompt and returns the raw JSON payload. Implementations classify
// failures (ErrGenerationTimeout, ErrUpstreamUnavailable, ErrSchemaViolation)
// and never retry; retry policy belongs to the caller.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewGenerationClient creates a generation client based on the configured provider.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiGenerationClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// cleanJSONResponse strips markdown fences and any prose around the first
// complete JSON object. Kept even with JSON response modes enabled; models
// occasionally wrap output anyway.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return response
	}
	return strings.TrimSpace(response[start : end+1])
}

// findMatchingBrace returns the index of the brace closing the one at start,
// skipping braces inside JSON strings. -1 if unbalanced.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
