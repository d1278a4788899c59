package command

import (
	"github.com/sandevgo/advogado/internal/core"
)

// NewRouter builds the router with every built-in command.
func NewRouter(history historyReader) *Router {
	help := &HelpCommand{}
	r := New([]core.Command{
		help,
		NewAboutCommand(),
		NewHistoryCommand(history),
	})
	help.list = r.ListCommands
	return r
}
