package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// A missing .env is fine; the variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	backend, err := newCompleter(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	answerer := newAnswerer(backend, log)

	extract := func(path string) (string, error) {
		return extractText(log, path)
	}

	m := newModel(session{label: cfg.Label}, extract, answerer.Answer, openInViewer, log)
	log.WithFields(logrus.Fields{
		"provider": cfg.Provider,
		"model":    cfg.Model,
	}).Info("starting")

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCompleter(ctx context.Context, cfg Config) (completer, error) {
	if cfg.Provider == providerGemini {
		g, err := newGeminiCompleter(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return newGroqCompleter(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
}

// newLogger writes to cfg.LogFile, or nowhere: the terminal belongs to the UI.
func newLogger(cfg Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}
