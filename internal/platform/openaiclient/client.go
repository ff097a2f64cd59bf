// Package openaiclient wraps the OpenAI chat-completions API behind the
// small surface the recommendation pipeline needs.
package openaiclient

import (
	"context"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	defaultModel    = openai.ChatModelGPT4oMini
	maxOutputTokens = 500
)

type Client struct {
	api   openai.Client
	model openai.ChatModel
}

func New(apiKey string) *Client {
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: defaultModel,
	}
}

// Complete sends the two-message prompt and returns the trimmed output text.
// No choices in the response yields an empty string, not an error; the
// caller decides what to show the user in that case.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model:               c.model,
		MaxCompletionTokens: openai.Int(maxOutputTokens),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
