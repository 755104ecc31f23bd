package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "asset: cardano\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Currency != "usd" {
		t.Errorf("Expected default currency usd, got %s", cfg.Currency)
	}
	if cfg.PriceSource != "COINGECKO" {
		t.Errorf("Expected default price_source COINGECKO, got %s", cfg.PriceSource)
	}
	if cfg.HeadlineSource != "STATIC" {
		t.Errorf("Expected default headline_source STATIC, got %s", cfg.HeadlineSource)
	}
	if cfg.Scorer != "LEXICON" {
		t.Errorf("Expected default scorer LEXICON, got %s", cfg.Scorer)
	}
	if cfg.MaxHeadlines != 15 {
		t.Errorf("Expected default max_headlines 15, got %d", cfg.MaxHeadlines)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout_seconds 30, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadConfigModelDefaultPerProvider(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "asset: cardano\nscorer: CLAUDE\n"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.LLM.Model != "claude-3-haiku-20240307" {
		t.Errorf("Expected Anthropic model default for CLAUDE scorer, got %s", cfg.LLM.Model)
	}

	cfg, err = LoadConfig(writeConfig(t, "asset: cardano\nscorer: OPENAI\n"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("Expected OpenAI model default for OPENAI scorer, got %s", cfg.LLM.Model)
	}
}

func TestLoadConfigExplicitModelKept(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "asset: cardano\nscorer: CLAUDE\nllm:\n  model: claude-3-5-sonnet-20241022\n"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.LLM.Model != "claude-3-5-sonnet-20241022" {
		t.Errorf("Expected configured model to be kept, got %s", cfg.LLM.Model)
	}
}

func TestLoadConfigRejectsMissingAsset(t *testing.T) {
	path := writeConfig(t, "currency: usd\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for missing asset")
	}
}

func TestLoadConfigRejectsInvalidPriceSource(t *testing.T) {
	path := writeConfig(t, "asset: cardano\nprice_source: BLOOMBERG\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid price_source")
	}
}

func TestLoadConfigRejectsInvalidScorer(t *testing.T) {
	path := writeConfig(t, "asset: cardano\nscorer: TEXTBLOB\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid scorer")
	}
}

func TestLoadConfigStaticPriceRequired(t *testing.T) {
	path := writeConfig(t, "asset: cardano\nprice_source: STATIC\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for STATIC price source without static_price")
	}
}

func TestLoadConfigYahooRequiresSymbol(t *testing.T) {
	path := writeConfig(t, "asset: cardano\nprice_source: YAHOO\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for YAHOO price source without symbol")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
