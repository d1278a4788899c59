package installer

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

var geminiModels = []item{
	{id: "gemini-1.5-flash-latest", title: "Gemini 1.5 Flash", desc: "Rápido e barato, padrão recomendado"},
	{id: "gemini-1.5-pro-latest", title: "Gemini 1.5 Pro", desc: "Respostas mais elaboradas, maior latência"},
	{id: "gemini-2.0-flash", title: "Gemini 2.0 Flash", desc: "Geração mais recente da linha Flash"},
}

// ModelStep picks the Gemini model from a filterable list.
type ModelStep struct {
	list list.Model
}

func NewModelStep() Step {
	items := make([]list.Item, 0, len(geminiModels))
	for _, m := range geminiModels {
		items = append(items, m)
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Escolha o modelo Gemini"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ModelStep{list: l}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if width > 0 && height > 4 {
		s.list.SetSize(width, height-4)
	}

	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		wasFiltering := s.list.FilterState() == list.Filtering
		s.list, cmd = s.list.Update(msg)

		if wasFiltering || s.list.FilterState() == list.Filtering {
			return s, cmd
		}

		if i, ok := s.list.SelectedItem().(item); ok {
			state.Settings.GeminiModel = i.id
			return nil, nil
		}
		return s, cmd
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if len(s.list.Items()) == 0 {
		return "Nenhum modelo disponível.\n"
	}
	return s.list.View()
}
