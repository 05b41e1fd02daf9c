package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/ports"
)

func newTestGemini(baseURL string) ports.Provider {
	return New(domain.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
		Kind:    domain.ProviderGemini,
	})
}

func newTestOpenAI(baseURL string) ports.Provider {
	return New(domain.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
		Kind:    domain.ProviderOpenAICompatible,
	})
}

func TestGeminiGenerateBuildsEnvelopeAndExtractsFirstCandidate(t *testing.T) {
	var gotPath, gotQueryKey string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQueryKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"curl -s ifconfig.me"},{"text":"ignored"}]}},{"content":{"parts":[{"text":"second candidate"}]}}]}`))
	}))
	defer srv.Close()

	p := newTestGemini(srv.URL)
	got, err := p.Generate(context.Background(), "show my ip address", "system text")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "curl -s ifconfig.me" {
		t.Errorf("Generate() = %q, want first part of first candidate", got)
	}
	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQueryKey != "test-key" {
		t.Errorf("key query parameter = %q", gotQueryKey)
	}
	if _, ok := gotBody["systemInstruction"]; !ok {
		t.Error("request body missing systemInstruction")
	}
	if _, ok := gotBody["contents"]; !ok {
		t.Error("request body missing contents")
	}
}

func TestGeminiEmbeddedErrorWinsOver2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	p := newTestGemini(srv.URL)
	_, err := p.Generate(context.Background(), "anything", "sys")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200 (embedded error on 2xx)", apiErr.Status)
	}
	if apiErr.Message != "quota exceeded" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestGeminiNon2xxCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`upstream overloaded`))
	}))
	defer srv.Close()

	p := newTestGemini(srv.URL)
	_, err := p.Generate(context.Background(), "anything", "sys")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", apiErr.Status)
	}
	if apiErr.Body != "upstream overloaded" {
		t.Errorf("Body = %q", apiErr.Body)
	}
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p := newTestGemini(srv.URL)
	_, err := p.Generate(context.Background(), "anything", "sys")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("error = %v, want ErrEmptyResponse", err)
	}
}

func TestOpenAIGenerateBuildsEnvelopeAndExtractsFirstChoice(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"df -h"}},{"message":{"role":"assistant","content":"other"}}]}`))
	}))
	defer srv.Close()

	p := newTestOpenAI(srv.URL)
	got, err := p.Generate(context.Background(), "show disk usage", "system text")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "df -h" {
		t.Errorf("Generate() = %q, want first choice content", got)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Model != "test-model" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if gotBody.MaxTokens != maxTokens {
		t.Errorf("max_tokens = %d, want %d", gotBody.MaxTokens, maxTokens)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Errorf("messages = %+v, want [system, user]", gotBody.Messages)
	}
}

func TestOpenAIEmbeddedErrorWinsOver2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"invalid model"}}`))
	}))
	defer srv.Close()

	p := newTestOpenAI(srv.URL)
	_, err := p.Generate(context.Background(), "anything", "sys")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "invalid model" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestOpenAIEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := newTestOpenAI(srv.URL)
	_, err := p.Generate(context.Background(), "anything", "sys")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("error = %v, want ErrEmptyResponse", err)
	}
}
