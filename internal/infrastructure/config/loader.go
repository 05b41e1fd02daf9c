// Package config resolves the process configuration: an optional YAML file
// under ~/.wtf filled in first, then environment variables on top. The
// provider configuration is resolved once per process and treated as
// read-only afterwards.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/wtf/assets"
	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/infrastructure/provider"
	"github.com/doeshing/wtf/internal/pkg/filesystem"
)

// Environment variables consumed here. The API key is the only required
// input; everything else has a usable default.
const (
	EnvAPIKey        = "WTF_API_KEY"
	EnvAPIKeyGemini  = "GEMINI_API_KEY"
	EnvBaseURL       = "WTF_BASE_URL"
	EnvModel         = "WTF_MODEL"
	EnvNoContext     = "WTF_NO_CONTEXT"
	defaultGemini    = "gemini-2.0-flash"
	defaultChatModel = "gpt-4o-mini"
)

// ErrMissingAPIKey is fatal: the process must exit before any session
// starts.
var ErrMissingAPIKey = fmt.Errorf(
	"no API key configured: set %s (or %s)\n\nTo get a free Gemini key:\n  1. Visit https://aistudio.google.com/app/apikey\n  2. Run: export %s='your-key-here'",
	EnvAPIKey, EnvAPIKeyGemini, EnvAPIKeyGemini)

// FileLoader reads ~/.wtf/config.yaml, writing the embedded default on
// first run.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a loader; path overrides the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load reads the config file, creating it with defaults when missing.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if writeErr := writeDefault(path); writeErr != nil {
				return domain.Config{}, writeErr
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = "file"
	}
	return cfg, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("WTF_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(filesystem.ConfigDir(), "config.yaml")
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, 0o600)
}

// ResolveProvider merges the file configuration with the environment into
// the final provider configuration. A custom base URL, from either source,
// selects the OpenAI-compatible wire shape; otherwise the Gemini shape with
// its public endpoint is used.
func ResolveProvider(cfg domain.Config) (domain.ProviderConfig, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKeyGemini)
	}
	if apiKey == "" {
		return domain.ProviderConfig{}, ErrMissingAPIKey
	}

	baseURL := os.Getenv(EnvBaseURL)
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}

	kind := domain.ProviderGemini
	if baseURL != "" {
		kind = domain.ProviderOpenAICompatible
	}

	model := os.Getenv(EnvModel)
	if model == "" {
		model = cfg.Model
	}
	if model == "" {
		if kind == domain.ProviderGemini {
			model = defaultGemini
		} else {
			model = defaultChatModel
		}
	}

	if kind == domain.ProviderGemini && baseURL == "" {
		baseURL = provider.DefaultGeminiBaseURL
	}

	return domain.ProviderConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		Kind:    kind,
	}, nil
}
