package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/advogado/pkg/log"
)

type WhatsAppConfig struct {
	VerifyToken string `env:"WHATSAPP_VERIFY_TOKEN" envDefault:"token_seguro_para_whatsapp"`
	// TwilioAuthToken enables X-Twilio-Signature checks when set.
	TwilioAuthToken string `env:"TWILIO_AUTH_TOKEN"`
	// PublicURL is the webhook URL as Twilio sees it, needed behind proxies.
	PublicURL string `env:"WHATSAPP_PUBLIC_URL"`
}

func NewWhatsAppConfig(ctx context.Context) *WhatsAppConfig {
	c := &WhatsAppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse WhatsApp config")
	}
	return c
}
