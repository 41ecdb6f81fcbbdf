// Package ai is the chat-completion collaborator behind the AI assistant
// tool. It speaks the OpenAI-compatible chat API and degrades to a fixed
// offline reply when the network or configuration is unusable.
package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"classlauncher/models"
)

// OfflineReply is shown when no completion could be obtained
const OfflineReply = "AI 助手当前不可用，请检查网络连接和 API 设置。"

// Client calls a chat-completion endpoint configured from settings
type Client struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewClient creates a client from the AI settings fields
func NewClient(settings models.Settings) *Client {
	return &Client{
		endpoint: settings.AIEndpoint,
		apiKey:   settings.AIAPIKey,
		model:    settings.AIModel,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt and returns the first choice's text
func (c *Client) Complete(prompt string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("no API key configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("unexpected completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// CompleteOrFallback returns the completion text, or OfflineReply on any
// failure. Tool surfaces use this so a dead network never breaks the dialog.
func (c *Client) CompleteOrFallback(prompt string) string {
	text, err := c.Complete(prompt)
	if err != nil {
		return OfflineReply
	}
	return text
}
