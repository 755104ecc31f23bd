package sentiment

import (
	"context"
	"testing"

	"sentiment-advisor/internal/types"
)

func TestLexiconPositiveHeadline(t *testing.T) {
	scorer := NewLexiconScorer()
	ctx := context.Background()

	score, err := scorer.Score(ctx, "Cardano Surges After Positive Development Updates")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if score.Label != types.Positive {
		t.Errorf("Expected POSITIVE label, got %s", score.Label)
	}
	if score.Confidence <= 0 || score.Confidence > 1 {
		t.Errorf("Confidence out of range: %v", score.Confidence)
	}
	if score.Signed() <= 0 {
		t.Errorf("Expected positive signed value, got %v", score.Signed())
	}
}

func TestLexiconNegativeHeadline(t *testing.T) {
	scorer := NewLexiconScorer()
	ctx := context.Background()

	score, err := scorer.Score(ctx, "Experts Warn Of Possible Correction in Cardano")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if score.Label != types.Negative {
		t.Errorf("Expected NEGATIVE label, got %s", score.Label)
	}
	if score.Signed() >= 0 {
		t.Errorf("Expected negative signed value, got %v", score.Signed())
	}
}

func TestLexiconNoSignal(t *testing.T) {
	scorer := NewLexiconScorer()
	ctx := context.Background()

	for _, text := range []string{"", "the quick brown fox", "12345 !!!"} {
		score, err := scorer.Score(ctx, text)
		if err != nil {
			t.Fatalf("Score(%q) returned error: %v", text, err)
		}
		if score.Confidence != 0 {
			t.Errorf("Expected zero confidence for %q, got %v", text, score.Confidence)
		}
		if score.Label != types.Positive && score.Label != types.Negative {
			t.Errorf("Expected a valid label for %q, got %q", text, score.Label)
		}
	}
}

func TestLexiconMixedSignal(t *testing.T) {
	scorer := NewLexiconScorer()
	ctx := context.Background()

	// One positive hit (strong) and one negative hit (bearish) cancel out.
	score, err := scorer.Score(ctx, "Bearish Signals Emerge Despite Strong Performance")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if score.Confidence != 0 {
		t.Errorf("Expected zero confidence on tie, got %v", score.Confidence)
	}
}

func TestLexiconDeterminism(t *testing.T) {
	scorer := NewLexiconScorer()
	ctx := context.Background()
	text := "Major Financial Institution to Begin Holding ADA Reserves"

	first, err := scorer.Score(ctx, text)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := scorer.Score(ctx, text)
		if err != nil {
			t.Fatalf("Score returned error: %v", err)
		}
		if again != first {
			t.Fatalf("Scorer not deterministic: %+v vs %+v", first, again)
		}
	}
}
