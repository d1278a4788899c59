package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/advogado/pkg/log"
)

const (
	GeminiKeyEnv  = "GEMINI_API_KEY"
	geminiKeyFile = "api-gemini.txt"
)

type GeminiConfig struct {
	APIKey         string        `env:"GEMINI_API_KEY"`
	Model          string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash-latest"`
	BaseURL        string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout        time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`
	MaxAttempts    int           `env:"GEMINI_MAX_ATTEMPTS" envDefault:"3"`
	InitialBackoff time.Duration `env:"GEMINI_INITIAL_BACKOFF" envDefault:"1s"`

	// KeyFile is read when GEMINI_API_KEY is not set.
	KeyFile string `env:"GEMINI_API_KEY_FILE"`
}

func LoadGeminiConfig(runtimePath string) (*GeminiConfig, error) {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.KeyFile == "" {
		c.KeyFile = filepath.Join(runtimePath, geminiKeyFile)
	}
	return c, nil
}

func NewGeminiConfig(ctx context.Context, runtimePath string) *GeminiConfig {
	c, err := LoadGeminiConfig(runtimePath)
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}

// ReadAPIKey looks the key up on every call so a key installed while the
// server runs is picked up. The environment wins over the key file.
func (c *GeminiConfig) ReadAPIKey() (string, bool) {
	if key := strings.TrimSpace(os.Getenv(GeminiKeyEnv)); key != "" {
		return key, true
	}
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key, true
	}
	if c.KeyFile == "" {
		return "", false
	}

	data, err := os.ReadFile(c.KeyFile)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(data))
	return key, key != ""
}
