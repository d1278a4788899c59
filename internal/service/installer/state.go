package installer

// Settings is what the wizard collects. Field tags match the variables read
// by internal/config so the saved .env feeds straight back into it.
type Settings struct {
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GeminiModel     string `env:"GEMINI_MODEL"`
	EnableHTTP      bool   `env:"ENABLE_HTTP"`
	EnableTelegram  bool   `env:"ENABLE_TELEGRAM"`
	TelegramToken   string `env:"TELEGRAM_TOKEN"`
	VerifyToken     string `env:"WHATSAPP_VERIFY_TOKEN"`
	TwilioAuthToken string `env:"TWILIO_AUTH_TOKEN"`
	StorageDriver   string `env:"STORAGE_DRIVER"`
	DatabaseURL     string `env:"DATABASE_URL"`
	Debug           string `env:"ADVOGADO_DEBUG"`
}

type InstallState struct {
	Settings Settings

	// Channel is an intermediate choice expanded by the finalization step.
	Channel string
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
