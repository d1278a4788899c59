package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/advogado/pkg/log"
)

type SearchConfig struct {
	Enabled    bool          `env:"SEARCH_ENABLED" envDefault:"true"`
	BaseURL    string        `env:"SEARCH_BASE_URL" envDefault:"https://html.duckduckgo.com/html/"`
	Timeout    time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`
	MaxResults int           `env:"SEARCH_MAX_RESULTS" envDefault:"3"`
}

func NewSearchConfig(ctx context.Context) *SearchConfig {
	c := &SearchConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Search config")
	}
	return c
}
