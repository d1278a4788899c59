package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	channelWeb         = "Web + WhatsApp"
	channelWebTelegram = "Web + WhatsApp + Telegram"
	channelTelegram    = "Somente Telegram"

	storageSQLite   = "SQLite"
	storagePostgres = "Postgres"
)

// FinalizationStep derives the switches implied by earlier answers.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(state)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizando configuração...\n"
}

func finalize(state *InstallState) {
	st := &state.Settings

	st.EnableHTTP = state.Channel != channelTelegram
	st.EnableTelegram = state.Channel != channelWeb && st.TelegramToken != ""

	if st.StorageDriver == "" {
		st.StorageDriver = "sqlite"
	}
	if st.StorageDriver != "postgres" {
		st.DatabaseURL = ""
	}
	if !st.EnableHTTP {
		st.VerifyToken = ""
		st.TwilioAuthToken = ""
	}
	if st.Debug == "" {
		st.Debug = "0"
	}
}
