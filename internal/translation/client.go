package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteTranslator is the black-box machine-translation collaborator.
type RemoteTranslator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// APIClient calls a LibreTranslate-compatible provider over HTTPS.
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAPIClient creates a remote translation client. baseURL is the provider
// root; the translate endpoint is derived from it.
func NewAPIClient(baseURL, apiKey string, timeout time.Duration) (*APIClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("translation: api base url is required")
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate sends one text to the provider and returns the translated string.
func (c *APIClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("translation: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("translation: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation: provider call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("translation: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation: provider returned status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("translation: decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("translation: provider error: %s", out.Error)
	}
	if strings.TrimSpace(out.TranslatedText) == "" {
		return "", errors.New("translation: provider returned empty text")
	}
	return out.TranslatedText, nil
}
