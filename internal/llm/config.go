// Package llm provides centralized LLM configuration and client abstractions.
// One client serves a whole pipeline run: every stage uses the same model
// configuration so results remain comparable across stages.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// DefaultModel is the model used when no override is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultTemperature keeps extraction output consistent between runs.
const DefaultTemperature = 0.1

// Config holds the model configuration for a pipeline run
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// WithModel returns a new Config using the given model name. An empty name
// keeps the existing model.
func (c *Config) WithModel(model string) *Config {
	newConfig := &Config{
		Provider:    c.Provider,
		Model:       c.Model,
		Temperature: c.Temperature,
	}
	if model != "" {
		newConfig.Model = model
	}
	return newConfig
}
