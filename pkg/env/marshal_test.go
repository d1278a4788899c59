package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	APIKey   string        `env:"GEMINI_API_KEY,required"`
	Model    string        `env:"GEMINI_MODEL"`
	Timeout  time.Duration `env:"GEMINI_TIMEOUT"`
	Attempts int           `env:"GEMINI_MAX_ATTEMPTS"`
	Enabled  bool          `env:"ENABLE_TELEGRAM"`
	Token    string        `env:"WHATSAPP_VERIFY_TOKEN"`
	Skipped  string
	hidden   string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	out, err := MarshalEnv(&sample{
		APIKey:   "abc123",
		Timeout:  30 * time.Second,
		Attempts: 3,
		Enabled:  true,
		Token:    "token com espaço",
		Skipped:  "x",
		hidden:   "y",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"GEMINI_API_KEY=abc123\n"+
			"GEMINI_TIMEOUT=30s\n"+
			"GEMINI_MAX_ATTEMPTS=3\n"+
			"ENABLE_TELEGRAM=true\n"+
			"WHATSAPP_VERIFY_TOKEN=\"token com espaço\"\n",
		out)
}

func TestMarshalEnvEmpty(t *testing.T) {
	out, err := MarshalEnv(sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnvRejectsNonStruct(t *testing.T) {
	_, err := MarshalEnv("GEMINI_API_KEY=x")
	require.Error(t, err)
}
