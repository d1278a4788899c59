package command

import (
	"context"

	"github.com/sandevgo/advogado/internal/core"
)

const disclaimer = "As respostas são apenas orientativas e não substituem a consulta a um advogado."

type AboutCommand struct{}

func NewAboutCommand() core.Command {
	return &AboutCommand{}
}

func (c *AboutCommand) Name() string {
	return "sobre"
}

func (c *AboutCommand) Description() string {
	return "Informações sobre o " + core.BotName
}

func (c *AboutCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	f := newFormatter()
	return f.Combine(
		f.Info(core.BotName),
		f.Label("Versão", core.BotVersion),
		f.Label("Código", core.RepositoryURL),
		f.Tip(disclaimer),
	), nil
}
