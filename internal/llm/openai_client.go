package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an empty or unusable OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep coaching assistant.

You receive one user's sleep record for a single date, plus any cognitive test scores from the same date. You must base your advice only on the provided data.

Your goals:
- Briefly describe what stands out about this night's sleep (duration, quality, latency, awakenings, disturbance factors).
- If cognitive scores are present, note how they might relate to the night's sleep, in cautious everyday language.
- Give 2-3 practical, behavioral suggestions for tonight.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines.
- If data is limited, say so plainly.
- Respond in 3-5 short sentences of plain text. No lists, no markdown, no JSON.`

const userPromptTemplate = `Here is JSON describing the user's sleep and cognitive data for %s.

- "sleep_score" is a 0-100 rubric score for the night.
- "srt_score", "symbol_score", "pattern_score" are 0-100 cognitive test scores; a missing field means the test was not taken that day.

JSON:

%s

Based on this data, write the recommendation.`

// RecommendationLLM generates a daily recommendation from one date's
// sleep and cognitive data.
type RecommendationLLM interface {
	GenerateRecommendation(ctx context.Context, recCtx *domain.RecommendationContext) (string, error)
}

// OpenAIClient implements RecommendationLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client. Returns nil if apiKey is
// empty; a nil client fails every call with ErrOpenAIUnavailable.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateRecommendation calls OpenAI and returns the plain-text advice.
func (c *OpenAIClient) GenerateRecommendation(ctx context.Context, recCtx *domain.RecommendationContext) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(recCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, recCtx.Date, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrOpenAIResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrOpenAIResponse
	}
	return text, nil
}
