package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatData contains the data marshalled into a chat-completions request.
type chatData struct {
	Model          string         `json:"model"`
	Messages       []message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
	Tools          []any          `json:"tools,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason,omitempty"`
	} `json:"choices"`
}

// Client is a Gateway over an OpenAI-compatible chat-completions endpoint.
// Each call is single-attempt with the configured HTTP timeout; a timeout
// surfaces as an ordinary generation failure so callers can degrade locally.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Client from configuration.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}, nil
}

// GenerateText returns the model's free-text response for the prompt.
func (c *Client) GenerateText(ctx context.Context, p Prompt) (string, error) {
	body, err := c.post(ctx, chatData{
		Model:       p.Model,
		Messages:    promptMessages(p),
		Temperature: p.Temperature,
	})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateStructured requests a JSON object and decodes it into target.
func (c *Client) GenerateStructured(ctx context.Context, p Prompt, target any) error {
	body, err := c.post(ctx, chatData{
		Model:          p.Model,
		Messages:       promptMessages(p),
		Temperature:    p.Temperature,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ErrEmptyResponse
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), target); err != nil {
		return &SchemaValidationError{Model: p.Model, Raw: content, Err: err}
	}

	return nil
}

// GenerateWithTools runs one turn with the given tools exposed to the model.
func (c *Client) GenerateWithTools(ctx context.Context, p Prompt, tools []Tool) (*ToolsResponse, error) {
	wrapped := make([]any, len(tools))
	for i, t := range tools {
		wrapped[i] = map[string]any{"type": "function", "function": t}
	}

	body, err := c.post(ctx, chatData{
		Model:       p.Model,
		Messages:    promptMessages(p),
		Temperature: p.Temperature,
		Tools:       wrapped,
	})
	if err != nil {
		return nil, err
	}

	return ParseToolsResponse(body)
}

func (c *Client) post(ctx context.Context, data chatData) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation request returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func promptMessages(p Prompt) []message {
	messages := make([]message, 0, 2)
	if p.System != "" {
		messages = append(messages, message{Role: "system", Content: p.System})
	}
	messages = append(messages, message{Role: "user", Content: p.User})
	return messages
}

// stripCodeFence removes a surrounding markdown code fence, which some models
// add around JSON despite instructions.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
