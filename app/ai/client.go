package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ChatMessage represents a single message in the chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequestBody represents the request payload for the chat completions API.
type chatRequestBody struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// chatResponseBody represents the structure of the API response.
type chatResponseBody struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Client calls a chat-completions compatible text generation API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a generation client. The request lifetime is bounded by
// the caller's context, not by the http.Client.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

// Complete sends the prompt to the chat completions API and returns the
// generated text. Cancelling ctx aborts the upstream call.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("generation API key not configured")
	}

	reqBody := chatRequestBody{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: "You are a helpful blog writing assistant."},
			{Role: "user", Content: prompt},
		},
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(reqBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("non-200 response from generation API: %d; response: %s", resp.StatusCode, string(bodyBytes))
	}

	var responseBody chatResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&responseBody); err != nil {
		return "", err
	}

	if len(responseBody.Choices) == 0 {
		return "", errors.New("no completions returned")
	}
	if responseBody.Choices[0].Message.Content == "" {
		return "", errors.New("no content in response message")
	}
	return responseBody.Choices[0].Message.Content, nil
}
