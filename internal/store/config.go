package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Asset          string   `yaml:"asset"`
	Symbol         string   `yaml:"symbol"`
	Currency       string   `yaml:"currency"`
	PriceSource    string   `yaml:"price_source"`    // COINGECKO, YAHOO, STATIC
	HeadlineSource string   `yaml:"headline_source"` // STATIC, SCRAPE
	Scorer         string   `yaml:"scorer"`          // LEXICON, OPENAI, CLAUDE
	Headlines      []string `yaml:"headlines"`
	MaxHeadlines   int      `yaml:"max_headlines"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	StaticPrice    float64  `yaml:"static_price"`
	LLM            struct {
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
	} `yaml:"llm"`
}

func (c *Config) Validate() error {
	if c.Asset == "" {
		return errors.New("asset cannot be empty")
	}
	if c.Currency == "" {
		return errors.New("currency cannot be empty")
	}
	switch c.PriceSource {
	case "COINGECKO", "YAHOO", "STATIC":
	default:
		return fmt.Errorf("invalid price_source '%s': must be 'COINGECKO', 'YAHOO', or 'STATIC'", c.PriceSource)
	}
	if c.PriceSource == "YAHOO" && c.Symbol == "" {
		return errors.New("symbol is required when price_source is 'YAHOO'")
	}
	if c.PriceSource == "STATIC" && c.StaticPrice <= 0 {
		return fmt.Errorf("static_price must be positive when price_source is 'STATIC', got %.4f", c.StaticPrice)
	}
	switch c.HeadlineSource {
	case "STATIC", "SCRAPE":
	default:
		return fmt.Errorf("invalid headline_source '%s': must be 'STATIC' or 'SCRAPE'", c.HeadlineSource)
	}
	switch c.Scorer {
	case "LEXICON", "OPENAI", "CLAUDE":
	default:
		return fmt.Errorf("invalid scorer '%s': must be 'LEXICON', 'OPENAI', or 'CLAUDE'", c.Scorer)
	}
	if c.MaxHeadlines <= 0 {
		return fmt.Errorf("max_headlines must be positive, got %d", c.MaxHeadlines)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Currency == "" {
		c.Currency = "usd"
	}
	if c.PriceSource == "" {
		c.PriceSource = "COINGECKO"
	}
	if c.HeadlineSource == "" {
		c.HeadlineSource = "STATIC"
	}
	if c.Scorer == "" {
		c.Scorer = "LEXICON"
	}
	if c.MaxHeadlines == 0 {
		c.MaxHeadlines = 15
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 200
	}
	// The model default must match the selected provider: Anthropic
	// rejects OpenAI model ids and vice versa.
	if c.LLM.Model == "" {
		switch c.Scorer {
		case "CLAUDE":
			c.LLM.Model = "claude-3-haiku-20240307"
		default:
			c.LLM.Model = "gpt-4o-mini"
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
