package sentiment

import (
	"context"
	"strings"
	"unicode"

	"sentiment-advisor/internal/types"
)

// LexiconScorer labels headline polarity from financial word lists.
// Fully offline and deterministic; the default scorer when no LLM
// provider is configured.
type LexiconScorer struct {
	positiveWords map[string]bool
	negativeWords map[string]bool
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		positiveWords: loadPositiveWords(),
		negativeWords: loadNegativeWords(),
	}
}

// Score labels one headline. The label is POSITIVE when positive hits
// are at least as many as negative ones (including the zero-hit case),
// and the confidence is the net hit ratio in [0, 1]. Total over all
// strings: any input yields a well-formed score.
func (l *LexiconScorer) Score(_ context.Context, text string) (types.HeadlineScore, error) {
	words := tokenize(strings.ToLower(text))

	positive, negative := 0, 0
	for _, w := range words {
		if l.positiveWords[w] {
			positive++
		}
		if l.negativeWords[w] {
			negative++
		}
	}

	score := types.HeadlineScore{
		Headline: text,
		Label:    types.Positive,
	}

	hits := positive + negative
	if hits == 0 {
		// No signal either way: neutral-ish positive with zero weight.
		return score, nil
	}

	net := positive - negative
	if net < 0 {
		score.Label = types.Negative
		net = -net
	}
	score.Confidence = float64(net) / float64(hits)
	return score, nil
}

// tokenize splits text into lowercase word tokens on any non-letter rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func loadPositiveWords() map[string]bool {
	words := []string{
		"adoption", "advance", "advances", "benefit", "boom", "breakout",
		"bullish", "climb", "climbs", "confidence", "gain", "gains", "good",
		"great", "grew", "growing", "growth", "high", "improve", "improved",
		"innovation", "innovative", "interest", "leader", "leading",
		"momentum", "opportunity", "optimistic", "outperform", "positive",
		"profit", "profitable", "progress", "rally", "rallies", "rebound",
		"record", "recovery", "reserves", "rise", "rises", "robust", "soar",
		"soars", "solid", "strength", "strong", "succeed", "success",
		"successful", "support", "surge", "surges", "upbeat", "upgrade",
		"uptrend", "winning",
	}
	m := make(map[string]bool)
	for _, w := range words {
		m[w] = true
	}
	return m
}

func loadNegativeWords() map[string]bool {
	words := []string{
		"bad", "ban", "bearish", "collapse", "concern", "concerns",
		"correction", "crash", "crashes", "crisis", "damage", "decline",
		"declines", "decrease", "deficit", "difficult", "dip", "dips",
		"downgrade", "downturn", "drop", "drops", "dump", "fail", "failure",
		"falling", "falls", "fear", "fears", "fraud", "hack", "headwind",
		"lawsuit", "liquidation", "loss", "losses", "low", "negative",
		"plunge", "plunges", "poor", "problem", "recession", "risk", "risks",
		"selloff", "slow", "slowdown", "slump", "tumble", "tumbles",
		"uncertain", "uncertainty", "underperform", "volatile", "volatility",
		"warn", "warning", "warns", "weak", "weakness", "worse", "worst",
	}
	m := make(map[string]bool)
	for _, w := range words {
		m[w] = true
	}
	return m
}
