// Package provider normalizes two backend wire protocols (Gemini-shaped and
// OpenAI-compatible chat completions) into one text-generation capability.
// Each Generate call performs exactly one HTTP POST; retries are the
// caller's decision.
package provider

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/ports"
)

const maxTokens = 1024

// ErrEmptyResponse is returned when the backend answers successfully but
// carries no candidate or choice to extract.
var ErrEmptyResponse = errors.New("model returned no candidates")

// APIError reports a failed model call: a transport-level non-2xx status or
// an error document embedded in the response body. The raw body is retained
// for diagnostics.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Body)
}

// New builds the provider matching the configured kind. The HTTP client is
// shared and deliberately carries no timeout: the session blocks until the
// transport gives up or responds.
func New(cfg domain.ProviderConfig) ports.Provider {
	client := &http.Client{}
	switch cfg.Kind {
	case domain.ProviderOpenAICompatible:
		return &openAIClient{cfg: cfg, httpClient: client}
	default:
		return &geminiClient{cfg: cfg, httpClient: client}
	}
}
