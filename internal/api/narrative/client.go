package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/omarshaarawi/roastbot/internal/config"
	"github.com/omarshaarawi/roastbot/internal/recap"
)

var ErrEmptyResponse = errors.New("narrative service returned no choices")

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg config.OpenAI) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Generate renders the prompt and returns the first completion, trimmed.
func (c *Client) Generate(ctx context.Context, prompt recap.Prompt) (string, error) {
	content, err := prompt.Render()
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		MaxTokens:   prompt.MaxTokens,
		Temperature: prompt.Temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
