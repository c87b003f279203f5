package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	maxContextChars = 4000

	systemPrompt  = "You are a helpful assistant analyzing PDF content."
	contextPrefix = "The PDF contains the following text: "
	contextSuffix = "..."

	temperature = 0.7
	topP        = 1.0
	maxTokens   = 200
)

// ErrNoChoices is returned when the completion response carries no choices.
var ErrNoChoices = errors.New("no choices in completion response")

type chatRole string

const (
	roleSystem chatRole = "system"
	roleUser   chatRole = "user"
)

type chatMessage struct {
	Role    chatRole
	Content string
}

// completer sends a message list to a chat-completion backend and returns
// the first choice's content.
type completer interface {
	complete(ctx context.Context, messages []chatMessage) (string, error)
}

type Answerer struct {
	backend completer
	log     *logrus.Logger
}

func newAnswerer(backend completer, log *logrus.Logger) *Answerer {
	return &Answerer{backend: backend, log: log}
}

// Answer asks the backend about question using the start of text as context.
func (a *Answerer) Answer(ctx context.Context, text, question string) (string, error) {
	messages := buildMessages(text, question)

	a.log.WithFields(logrus.Fields{
		"question": question,
		"context":  len(messages[1].Content),
	}).Debug("sending question")

	reply, err := a.backend.complete(ctx, messages)
	if err != nil {
		if errors.Is(err, ErrNoChoices) {
			return "", err
		}
		return "", fmt.Errorf("completing chat: %w", err)
	}
	return reply, nil
}

func buildMessages(text, question string) []chatMessage {
	return []chatMessage{
		{Role: roleSystem, Content: systemPrompt},
		{Role: roleUser, Content: contextPrefix + truncateChars(text, maxContextChars) + contextSuffix},
		{Role: roleUser, Content: question},
	}
}

// truncateChars keeps the first n characters of s, counting runes.
func truncateChars(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
