package main

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// groqCompleter talks to Groq's OpenAI-compatible chat completion API.
type groqCompleter struct {
	client *openai.Client
	model  string
}

func newGroqCompleter(apiKey, baseURL, model string, opts ...option.RequestOption) *groqCompleter {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}, opts...)

	client := openai.NewClient(opts...)
	return &groqCompleter{client: &client, model: model}
}

func (g *groqCompleter) complete(ctx context.Context, messages []chatMessage) (string, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case roleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       g.model,
		Messages:    params,
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(topP),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
