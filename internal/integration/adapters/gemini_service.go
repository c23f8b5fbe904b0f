// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finansync/backend/internal/domain/entity"
)

// GeminiService implements the adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights asks Gemini for spending insights over the snapshot.
func (s *GeminiService) GenerateInsights(ctx context.Context, snapshot entity.FinancialSnapshot) ([]entity.SpendingInsight, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(1500)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(
			"You are an expert personal financial advisor. Always respond with valid JSON array only. No markdown formatting, no code blocks, no additional text.",
		)},
	}

	prompt, err := s.buildInsightPrompt(snapshot)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	insights, err := parseInsights(responseText(resp))
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return insights, nil
}

// AnswerQuestion answers a free-form question grounded on the snapshot.
func (s *GeminiService) AnswerQuestion(ctx context.Context, question string, snapshot entity.FinancialSnapshot) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.8)
	model.SetMaxOutputTokens(300)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(
			"You are a friendly personal financial advisor. Be helpful, encouraging, and specific.",
		)},
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	prompt := fmt.Sprintf(`You are a helpful personal financial advisor. Answer this question about the user's finances.

QUESTION: %q

FINANCIAL DATA:
%s

Provide a helpful, conversational answer with specific insights from their data. Include numbers, trends, and actionable advice when relevant. Keep the response under 200 words and friendly in tone.`, question, data)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	answer := strings.TrimSpace(responseText(resp))
	if answer == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return answer, nil
}

// buildInsightPrompt creates the insight prompt for Gemini.
func (s *GeminiService) buildInsightPrompt(snapshot entity.FinancialSnapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return fmt.Sprintf(`You are a personal financial advisor AI. Analyze this spending data and provide 3-5 actionable insights.

SPENDING DATA:
%s

IMPORTANT: Respond with ONLY a valid JSON array. No markdown, no code blocks, no explanations. Just the JSON array.

Format:
[
  {
    "type": "warning",
    "title": "Brief insight title",
    "description": "Detailed explanation of the pattern/issue",
    "actionable": "Specific action the user can take",
    "savings": 50,
    "category": "budget_category_if_relevant"
  }
]

Focus on budget overruns, spending patterns, money-saving opportunities, and achievements.`, data), nil
}

// responseText extracts the first text part of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

// cleanJSONResponse strips markdown code fences from a model response.
// If fences remain after trimming, the array is extracted between the
// first '[' and the last ']'.
func cleanJSONResponse(content string) string {
	cleaned := strings.TrimSpace(content)
	if cleaned == "" {
		return "[]"
	}

	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx != -1 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")

	if strings.Contains(cleaned, "```") {
		start := strings.Index(cleaned, "[")
		end := strings.LastIndex(cleaned, "]")
		if start != -1 && end > start {
			cleaned = cleaned[start : end+1]
		}
	}

	return strings.TrimSpace(cleaned)
}

// parseInsights decodes the model output into insights, tolerating a
// single object instead of an array and dropping entries missing any of
// the required text fields.
func parseInsights(content string) ([]entity.SpendingInsight, error) {
	if content == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	cleaned := cleanJSONResponse(content)

	var insights []entity.SpendingInsight
	if err := json.Unmarshal([]byte(cleaned), &insights); err != nil {
		var single entity.SpendingInsight
		if err2 := json.Unmarshal([]byte(cleaned), &single); err2 != nil {
			return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, cleaned)
		}
		insights = []entity.SpendingInsight{single}
	}

	valid := make([]entity.SpendingInsight, 0, len(insights))
	for _, insight := range insights {
		if insight.Title != "" && insight.Description != "" && insight.Actionable != "" {
			valid = append(valid, insight)
		}
	}
	return valid, nil
}
