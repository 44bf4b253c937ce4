/*
Package translate provides on-demand machine translation of chat messages.

This file implements the narrow HTTP adapter to the hosted completion service.
The contract is stateless: given text and a target language name, return the
translated text or fail. Retry policy belongs to the user, not to this client.
*/
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Translator is the external-service contract consumed by the Service.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// ClientConfig configures the completion endpoint and HTTP behavior.
type ClientConfig struct {
	// BaseURL is the API root, e.g. "https://api.openai.com/v1".
	BaseURL string

	// APIKey authenticates against the service.
	APIKey string

	// Model names the completion model used for translation.
	Model string

	// HTTPClient allows injecting a custom client; a sane default is used otherwise.
	HTTPClient *http.Client
}

// Client calls a chat-completion endpoint with a fixed translation prompt.
type Client struct {
	cfg ClientConfig
}

// NewClient builds a translation client, filling in defaults for the endpoint,
// model, and HTTP client.
func NewClient(cfg ClientConfig) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg}
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Translate asks the completion service to translate text into the language
// named targetLanguage and returns only the translation.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text into %s. Only provide the translation, no extra text: %q",
		targetLanguage, text,
	)

	body, err := json.Marshal(chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode translation request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("translation service returned status %d: %s", res.StatusCode, strings.TrimSpace(string(payload)))
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}

	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("translation response contained no choices")
	}

	translated := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("translation response was empty")
	}

	return translated, nil
}
