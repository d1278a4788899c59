package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInputStep(t *testing.T) {
	state := NewInstallState()
	step := NewGeminiKeyStep()

	next, _ := step.Update(enter, state, 80, 24)
	assert.Same(t, step, next, "required input must not accept an empty value")

	next, _ = step.Update(typed("AIza-test"), state, 80, 24)
	require.NotNil(t, next)
	next, _ = next.Update(enter, state, 80, 24)

	assert.Nil(t, next)
	assert.Equal(t, "AIza-test", state.Settings.GeminiAPIKey)
	assert.NotContains(t, step.View(state), "AIza-test")
}

func TestInputStep_Skip(t *testing.T) {
	state := NewInstallState()
	state.Channel = channelWeb

	next, _ := NewTelegramTokenStep().Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)
	assert.Empty(t, state.Settings.TelegramToken)

	next, _ = NewDatabaseURLStep().Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)
}

func TestChoiceStep(t *testing.T) {
	state := NewInstallState()
	step := NewStorageStep()

	step, _ = step.Update(down, state, 80, 24)
	require.NotNil(t, step)
	next, _ := step.Update(enter, state, 80, 24)

	assert.Nil(t, next)
	assert.Equal(t, "postgres", state.Settings.StorageDriver)
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name         string
		channel      string
		token        string
		wantHTTP     bool
		wantTelegram bool
	}{
		{"web only", channelWeb, "ignored", true, false},
		{"web and telegram", channelWebTelegram, "123:abc", true, true},
		{"telegram without token", channelWebTelegram, "", true, false},
		{"telegram only", channelTelegram, "123:abc", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewInstallState()
			state.Channel = tt.channel
			state.Settings.TelegramToken = tt.token
			state.Settings.DatabaseURL = "postgres://x"

			finalize(state)

			assert.Equal(t, tt.wantHTTP, state.Settings.EnableHTTP)
			assert.Equal(t, tt.wantTelegram, state.Settings.EnableTelegram)
			assert.Equal(t, "sqlite", state.Settings.StorageDriver)
			assert.Empty(t, state.Settings.DatabaseURL)
			assert.Equal(t, "0", state.Settings.Debug)
		})
	}
}

func TestSaveEnv(t *testing.T) {
	dir := t.TempDir()
	settings := &Settings{
		GeminiAPIKey:  "AIza-test",
		GeminiModel:   "gemini-1.5-flash-latest",
		EnableHTTP:    true,
		VerifyToken:   "meu token",
		StorageDriver: "sqlite",
	}

	require.NoError(t, SaveEnv(dir, settings))

	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "AIza-test", values["GEMINI_API_KEY"])
	assert.Equal(t, "true", values["ENABLE_HTTP"])
	assert.Equal(t, "meu token", values["WHATSAPP_VERIFY_TOKEN"])
	assert.NotContains(t, values, "ENABLE_TELEGRAM")

	info, err := os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	assert.Error(t, SaveEnv(dir, settings), "existing .env must not be overwritten")
}

func TestWizardFlow(t *testing.T) {
	dir := t.TempDir()
	m := newModel([]Step{
		NewGeminiKeyStep(),
		NewChannelStep(),
		NewTelegramTokenStep(),
		NewFinalizationStep(),
		NewSaveEnvStep(dir),
	})

	send := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(model)
	}

	send(typed("AIza-test"))
	send(enter)
	send(enter) // first channel: web only
	send(nextMsg{})
	send(nextMsg{})
	send(nextMsg{})

	assert.Equal(t, len(m.steps), m.currentStep)
	assert.FileExists(t, filepath.Join(dir, ".env"))
	assert.False(t, m.state.Settings.EnableTelegram)
}
