package domain

// ProviderKind selects which wire protocol the provider client speaks.
// The kind is fixed once at configuration time: supplying a custom base URL
// switches from the default Gemini shape to the OpenAI-compatible shape.
type ProviderKind string

const (
	ProviderGemini           ProviderKind = "gemini"
	ProviderOpenAICompatible ProviderKind = "openai"
)

// ProviderConfig is the resolved, read-only provider configuration for the
// lifetime of the process. APIKey is always non-empty; BaseURL and Model are
// filled with usable defaults when unset.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Kind    ProviderKind
}

// Config mirrors ~/.wtf/config.yaml. Environment variables take precedence
// over every field here.
type Config struct {
	Model   string          `yaml:"model"`
	BaseURL string          `yaml:"base_url"`
	History HistorySettings `yaml:"history"`
	Context ContextSettings `yaml:"context"`
}

// HistorySettings selects the history backend and its location.
type HistorySettings struct {
	// Backend is "file" (newline-delimited JSON, the default) or "sqlite".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// ContextSettings configures prompt context harvesting.
type ContextSettings struct {
	Disabled bool `yaml:"disabled"`
}
