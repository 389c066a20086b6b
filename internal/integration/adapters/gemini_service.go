package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pennyflow/backend/internal/application/adapter"
)

// GeminiService implements the CategorySuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini to pick the best matching category for a transaction
// description.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp, request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal finance transactions. Given a transaction description and the user's existing categories, pick the single best matching category.

RULES:
- Pick ONLY from the provided category list. Never invent a new category name.
- If nothing fits well, pick the closest general category and lower the confidence.
- Confidence is between 0.0 and 1.0.

AVAILABLE CATEGORIES:
`)

	for _, category := range request.Categories {
		sb.WriteString(fmt.Sprintf("- %s\n", category))
	}

	sb.WriteString(fmt.Sprintf(`
TRANSACTION DESCRIPTION: %q

Respond with a single JSON object:
{
  "category": "exact name from the list",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`, request.Description))

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into a CategorySuggestionResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	// Reject hallucinated category names.
	known := false
	for _, category := range request.Categories {
		if strings.EqualFold(category, suggestion.Category) {
			suggestion.Category = category
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("gemini suggested an unknown category: %s", suggestion.Category)
	}

	if suggestion.Confidence < 0 {
		suggestion.Confidence = 0
	}
	if suggestion.Confidence > 1 {
		suggestion.Confidence = 1
	}

	return &adapter.CategorySuggestionResult{
		Category:   suggestion.Category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}
