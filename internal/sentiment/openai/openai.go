package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"sentiment-advisor/internal/store"
	"sentiment-advisor/internal/trace"
	"sentiment-advisor/internal/types"
)

const systemPrompt = "You are a financial news analyst. Classify headline sentiment. Respond ONLY with valid JSON."

// Scorer labels headline polarity through the OpenAI chat completions API.
type Scorer struct {
	cfg *store.Config
}

func NewScorer(cfg *store.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

func (s *Scorer) Score(ctx context.Context, text string) (types.HeadlineScore, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return types.HeadlineScore{}, errors.New("OPENAI_API_KEY missing")
	}

	body := map[string]any{
		"model": s.cfg.LLM.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildPrompt(text)},
		},
		"temperature": s.cfg.LLM.Temperature,
		"max_tokens":  s.cfg.LLM.MaxTokens,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return types.HeadlineScore{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return types.HeadlineScore{}, fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return types.HeadlineScore{}, err
	}
	if len(r.Choices) == 0 {
		return types.HeadlineScore{}, errors.New("no choices")
	}

	return parseResult(text, r.Choices[0].Message.Content)
}

func buildPrompt(headline string) string {
	return fmt.Sprintf(`Classify the sentiment of this financial news headline.

Headline: %s

Respond ONLY with compact JSON matching:
{"label": "POSITIVE" or "NEGATIVE", "confidence": 0.0 to 1.0}`, headline)
}

// parseResult validates the model's JSON into a HeadlineScore.
// Confidence is clamped into [0, 1]; an unknown label is an error and
// the headline is skipped upstream.
func parseResult(headline, content string) (types.HeadlineScore, error) {
	var out struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return types.HeadlineScore{}, fmt.Errorf("invalid JSON response: %w", err)
	}

	label := types.Polarity(strings.ToUpper(strings.TrimSpace(out.Label)))
	if label != types.Positive && label != types.Negative {
		return types.HeadlineScore{}, fmt.Errorf("invalid sentiment label %q", out.Label)
	}

	conf := out.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	return types.HeadlineScore{Headline: headline, Label: label, Confidence: conf}, nil
}
