// Package openaichat wraps any OpenAI-compatible chat completion endpoint
// as an alternate generative collaborator.
package openaichat

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// Client is a thin wrapper over the OpenAI-compatible chat API.
type Client struct {
	client *openai.Client
}

// NewClient creates a client. baseURL may be empty for the official API, or
// point at any compatible provider.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{client: openai.NewClientWithConfig(config)}, nil
}

// Generate sends the prompt as a single user turn and returns the reply.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = defaultModel
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
