package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/doeshing/wtf/internal/domain"
)

// DefaultGeminiBaseURL is used when no custom base URL is configured.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// geminiClient speaks the generateContent wire shape: a document with
// systemInstruction and contents, API key passed as a query parameter.
type geminiClient struct {
	cfg        domain.ProviderConfig
	httpClient *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction geminiContent   `json:"systemInstruction"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *embeddedError `json:"error"`
}

// embeddedError is the error document both backends may carry in the body,
// even alongside a 2xx transport status.
type embeddedError struct {
	Message string `json:"message"`
}

func (c *geminiClient) Name() string {
	return "gemini"
}

func (c *geminiClient) Generate(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: userPrompt}}}},
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
	})
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Model, url.QueryEscape(c.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return "", &APIError{Status: resp.StatusCode, Message: parsed.Error.Message, Body: string(raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{Status: resp.StatusCode, Body: string(raw)}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
