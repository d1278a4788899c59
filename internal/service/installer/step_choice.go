package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ChoiceStep is a single-select menu navigated with arrows or j/k.
type ChoiceStep struct {
	title   string
	choices []string
	cursor  int
	assign  func(state *InstallState, choice string)
}

func NewChoiceStep(title string, choices []string, assign func(*InstallState, string)) Step {
	return &ChoiceStep{
		title:   title,
		choices: choices,
		assign:  assign,
	}
}

func NewChannelStep() Step {
	return NewChoiceStep("Escolha os canais de atendimento:", []string{channelWeb, channelWebTelegram, channelTelegram},
		func(state *InstallState, choice string) {
			state.Channel = choice
		})
}

func NewStorageStep() Step {
	return NewChoiceStep("Onde guardar o histórico de conversas:", []string{storageSQLite, storagePostgres},
		func(state *InstallState, choice string) {
			state.Settings.StorageDriver = strings.ToLower(choice)
		})
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.assign(state, s.choices[s.cursor])
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(ctrl+c para sair)\n")
	return b.String()
}
