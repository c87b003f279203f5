package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiCompleter struct {
	client *genai.Client
	model  string
}

// newGeminiCompleter uses the public Gemini endpoint unless baseURL is set.
func newGeminiCompleter(ctx context.Context, apiKey, baseURL, model string) (*geminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &geminiCompleter{client: client, model: model}, nil
}

func (g *geminiCompleter) complete(ctx context.Context, messages []chatMessage) (string, error) {
	system, contents := geminiContents(messages)

	config := &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       genai.Ptr(float32(temperature)),
		TopP:              genai.Ptr(float32(topP)),
		MaxOutputTokens:   maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", ErrNoChoices
	}
	return resp.Text(), nil
}

// geminiContents maps chat messages onto Gemini's model: system messages
// become the system instruction, the rest user turns.
func geminiContents(messages []chatMessage) (*genai.Content, []*genai.Content) {
	var system *genai.Content
	var contents []*genai.Content
	for _, m := range messages {
		if m.Role == roleSystem {
			system = genai.NewContentFromText(m.Content, genai.RoleUser)
			continue
		}
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}
	return system, contents
}
