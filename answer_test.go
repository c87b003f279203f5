package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply    string
	err      error
	received []chatMessage
}

func (f *fakeCompleter) complete(_ context.Context, messages []chatMessage) (string, error) {
	f.received = messages
	return f.reply, f.err
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestBuildMessages(t *testing.T) {
	msgs := buildMessages("short text", "What is it?")

	require.Len(t, msgs, 3)
	assert.Equal(t, chatMessage{Role: roleSystem, Content: "You are a helpful assistant analyzing PDF content."}, msgs[0])
	assert.Equal(t, chatMessage{Role: roleUser, Content: "The PDF contains the following text: short text..."}, msgs[1])
	assert.Equal(t, chatMessage{Role: roleUser, Content: "What is it?"}, msgs[2])
}

func TestBuildMessagesTruncatesContext(t *testing.T) {
	text := strings.Repeat("a", maxContextChars) + "TAIL"
	msgs := buildMessages(text, "q")

	want := contextPrefix + strings.Repeat("a", maxContextChars) + "..."
	assert.Equal(t, want, msgs[1].Content)
	assert.NotContains(t, msgs[1].Content, "TAIL")
}

func TestTruncateChars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"longer", "abcdef", 5, "abcde"},
		{"empty", "", 5, ""},
		{"multibyte", "héllo wörld", 7, "héllo w"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateChars(tt.in, tt.n))
		})
	}
}

func TestAnswerReturnsReply(t *testing.T) {
	backend := &fakeCompleter{reply: "The conclusion is 42."}
	a := newAnswerer(backend, discardLogger())

	reply, err := a.Answer(context.Background(), "report text", "What is the conclusion?")
	require.NoError(t, err)
	assert.Equal(t, "The conclusion is 42.", reply)
	require.Len(t, backend.received, 3)
	assert.Equal(t, "What is the conclusion?", backend.received[2].Content)
}

func TestAnswerNoChoices(t *testing.T) {
	a := newAnswerer(&fakeCompleter{err: ErrNoChoices}, discardLogger())

	_, err := a.Answer(context.Background(), "text", "q")
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestAnswerWrapsBackendError(t *testing.T) {
	cause := errors.New("connection refused")
	a := newAnswerer(&fakeCompleter{err: cause}, discardLogger())

	_, err := a.Answer(context.Background(), "text", "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNoChoices)
}
