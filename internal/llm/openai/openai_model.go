package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vendasim/internal/config"
	"vendasim/internal/llm"
	"vendasim/internal/port"
)

const (
	apiURL = "https://api.openai.com/v1/chat/completions"
)

// Model implements port.ChatModel using the OpenAI Chat Completions API.
type Model struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewModel creates an OpenAI-based chat model from a provider config.
func NewModel(cfg *config.LLMProviderConfig) *Model {
	return newModel(cfg, apiURL)
}

// NewModelWithEndpoint creates a model pointing at a custom API endpoint (for testing).
func NewModelWithEndpoint(cfg *config.LLMProviderConfig, endpoint string) *Model {
	return newModel(cfg, endpoint)
}

func newModel(cfg *config.LLMProviderConfig, endpoint string) *Model {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Model{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (m *Model) Complete(ctx context.Context, system string, messages []port.ChatMessage) (*port.ChatResult, error) {
	apiMessages := make([]map[string]interface{}, 0, len(messages)+1)
	apiMessages = append(apiMessages, map[string]interface{}{
		"role":    "system",
		"content": system,
	})
	for _, msg := range messages {
		apiMessages = append(apiMessages, map[string]interface{}{
			"role":    msg.Role,
			"content": msg.Content,
		})
	}

	reqBody := map[string]interface{}{
		"model":                 m.model,
		"max_completion_tokens": 4096,
		"messages":              apiMessages,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := llm.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, llm.NewRateLimitError("openai", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return m.parseResponse(respBody)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (m *Model) parseResponse(body []byte) (*port.ChatResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	if resp.Choices[0].FinishReason == "length" {
		return nil, fmt.Errorf("output truncated (finish_reason: length): response exceeded output token limit")
	}

	return &port.ChatResult{
		Text:  resp.Choices[0].Message.Content,
		Model: m.model,
	}, nil
}
