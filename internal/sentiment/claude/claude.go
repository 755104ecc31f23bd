package claude

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

// Scorer labels headline polarity through the Anthropic messages API.
type Scorer struct {
	cfg *store.Config
}

func NewScorer(cfg *store.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

func (s *Scorer) Score(ctx context.Context, text string) (types.HeadlineScore, error) {
	ctx, span := trace.StartSpan(ctx, "claude-api-call")
	defer span.End()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return types.HeadlineScore{}, errors.New("ANTHROPIC_API_KEY missing")
	}

	prompt := fmt.Sprintf(`Classify the sentiment of this financial news headline.

Headline: %s

Respond ONLY with compact JSON matching:
{"label": "POSITIVE" or "NEGATIVE", "confidence": 0.0 to 1.0}`, text)

	body := map[string]any{
		"model":      s.cfg.LLM.Model,
		"max_tokens": s.cfg.LLM.MaxTokens,
		"system":     systemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(bb))
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return types.HeadlineScore{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return types.HeadlineScore{}, fmt.Errorf("claude http %d", resp.StatusCode)
	}

	var r struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return types.HeadlineScore{}, err
	}
	if len(r.Content) == 0 {
		return types.HeadlineScore{}, errors.New("no content")
	}

	var out struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(r.Content[0].Text)), &out); err != nil {
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

	return types.HeadlineScore{Headline: text, Label: label, Confidence: conf}, nil
}
