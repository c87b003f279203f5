package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	providerGroq   = "groq"
	providerGemini = "gemini"

	defaultGroqModel   = "llama3-8b-8192"
	defaultGeminiModel = "gemini-2.0-flash"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1/"
)

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Label    string // provider name shown in error text
	LogFile  string
	LogLevel logrus.Level
}

// loadConfig reads the configuration through getenv so tests can supply
// their own environment.
func loadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Provider: strings.ToLower(strings.TrimSpace(getenv("PDFQA_PROVIDER"))),
		Model:    getenv("PDFQA_MODEL"),
		LogFile:  getenv("PDFQA_LOG_FILE"),
		LogLevel: parseLogLevel(getenv("LOG_LEVEL")),
	}
	if cfg.Provider == "" {
		cfg.Provider = providerGroq
	}

	switch cfg.Provider {
	case providerGroq:
		cfg.APIKey = getenv("LLAMA_API_KEY")
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("API key not found: add LLAMA_API_KEY to your environment or .env file")
		}
		if cfg.Model == "" {
			cfg.Model = defaultGroqModel
		}
		cfg.BaseURL = getenv("PDFQA_BASE_URL")
		if cfg.BaseURL == "" {
			cfg.BaseURL = defaultGroqBaseURL
		}
		cfg.Label = "Llama3"
	case providerGemini:
		cfg.APIKey = getenv("GEMINI_API_KEY")
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("API key not found: add GEMINI_API_KEY to your environment or .env file")
		}
		if cfg.Model == "" {
			cfg.Model = defaultGeminiModel
		}
		cfg.BaseURL = getenv("PDFQA_BASE_URL")
		cfg.Label = "Gemini"
	default:
		return Config{}, fmt.Errorf("unknown provider %q, use %s or %s", cfg.Provider, providerGroq, providerGemini)
	}

	return cfg, nil
}

func parseLogLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
