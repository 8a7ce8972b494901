package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bootline/internal/entities"
	"bootline/internal/interfaces"
)

const anthropicVersion = "2023-06-01"

// AnthropicClient calls the messages API over plain HTTP.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

func NewAnthropicClient(apiKey, baseURL, model string, maxTokens int, timeout time.Duration) interfaces.ModelClient {
	return &AnthropicClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type messageRequest struct {
	Model     string                 `json:"model"`
	MaxTokens int                    `json:"max_tokens"`
	System    string                 `json:"system,omitempty"`
	Tools     []entities.ToolSpec    `json:"tools,omitempty"`
	Messages  []entities.ChatMessage `json:"messages"`
}

type messageResponse struct {
	Content    []entities.ContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *AnthropicClient) CreateMessage(ctx context.Context, req entities.ModelRequest) (*entities.ModelResponse, error) {
	payload := messageRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    req.System,
		Tools:     req.Tools,
		Messages:  req.Messages,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode model request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("model API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("model API returned status %d", resp.StatusCode)
	}

	var decoded messageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	return &entities.ModelResponse{
		Content:    decoded.Content,
		StopReason: decoded.StopReason,
	}, nil
}
