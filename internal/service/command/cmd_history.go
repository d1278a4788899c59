package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/pkg/conv"
)

const (
	defaultHistoryTurns = 6
	maxHistoryTurns     = 20
	previewLen          = 200
)

type historyReader interface {
	RecentHistory(ctx context.Context, userID string, limit int) []core.Turn
}

// HistoryCommand shows the caller's latest turns.
type HistoryCommand struct {
	history historyReader
}

func NewHistoryCommand(h historyReader) core.Command {
	return &HistoryCommand{history: h}
}

func (c *HistoryCommand) Name() string {
	return "historico"
}

func (c *HistoryCommand) Description() string {
	return fmt.Sprintf("Mostra suas últimas mensagens (/historico [1-%d])", maxHistoryTurns)
}

func (c *HistoryCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	if userID == "" {
		return "", errors.New("não foi possível identificar o usuário")
	}

	limit := defaultHistoryTurns
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > maxHistoryTurns {
			return "", fmt.Errorf("quantidade inválida %q, use um número entre 1 e %d", args[0], maxHistoryTurns)
		}
		limit = n
	}

	f := newFormatter()
	turns := c.history.RecentHistory(ctx, userID, limit)
	if len(turns) == 0 {
		return f.Combine(f.Info("Histórico"), "Nenhuma conversa registrada ainda.\n"), nil
	}

	items := make([]string, 0, len(turns))
	for _, t := range turns {
		who := "Você"
		if t.Sender == core.SenderBot {
			who = core.BotName
		}
		items = append(items, fmt.Sprintf("%s (%s): %s", who, t.CreatedAt.Format("02/01 15:04"), preview(t.Message)))
	}

	return f.Combine(f.Info("Histórico"), f.List(items)), nil
}

func preview(msg string) string {
	msg = conv.StripBold(msg)
	r := []rune(msg)
	if len(r) <= previewLen {
		return msg
	}
	return string(r[:previewLen]) + "…"
}
