package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/advogado/internal/core"
)

type HelpCommand struct {
	list func() []core.Command
}

func (c *HelpCommand) Name() string {
	return "ajuda"
}

func (c *HelpCommand) Description() string {
	return "Lista os comandos disponíveis"
}

func (c *HelpCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	f := newFormatter()

	var items []string
	for _, cmd := range c.list() {
		items = append(items, fmt.Sprintf("/%s: %s", cmd.Name(), cmd.Description()))
	}

	return f.Combine(
		f.Info("Comandos"),
		f.List(items),
		f.Tip("Qualquer outra mensagem é tratada como uma pergunta jurídica."),
	), nil
}
