// internal/gpt/client.go
package gpt

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client talks to the OpenAI chat-completion API. It satisfies
// menu.Completer: exactly one call per invocation, no retry, no streaming.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewClient(apiKey string) *Client {
	return &Client{
		client:      openai.NewClient(apiKey),
		model:       "gpt-4o-mini",
		temperature: 0.7,
	}
}

func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// WithTemperature fixes output variability: lower strengthens adherence to
// the inventory/portion rules, higher increases lexical variety.
func (c *Client) WithTemperature(t float32) *Client {
	c.temperature = t
	return c
}

// Complete submits the two-part prompt and returns the raw text payload.
// It does not interpret the payload; validation happens downstream.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		MaxTokens:   2500,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
