package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/advogado/internal/config"
	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/sandevgo/advogado/internal/service/ui"
	"github.com/sandevgo/advogado/pkg/conv"
	"github.com/sandevgo/advogado/pkg/log"
)

type Resolver interface {
	Resolve(ctx context.Context, req resolver.Request) resolver.Result
}

// Handler answers one line at a time for a fixed user.
type Handler struct {
	Resolver Resolver
	// Commands is optional.
	Commands core.CmdRouter
	Identity core.Identity
}

type ReadLine struct {
	handler *Handler
	rl      *readline.Instance
}

func NewReadLine(h *Handler, cfg *config.AppConfig) (*ReadLine, error) {
	if h == nil || h.Resolver == nil {
		return nil, errors.New("cli: resolver must not be nil")
	}
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "você> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "sair",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		handler: h,
		rl:      rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	fmt.Fprintln(r.rl.Stdout(), ui.TitleStyle.Render(core.BotName+": digite sua pergunta ou 'sair' para encerrar."))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !r.handler.Answer(ctx, r.rl.Stdout(), line) {
			return nil
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// Answer resolves one line of input and prints the result. It returns false
// when the user asked to quit.
func (h *Handler) Answer(ctx context.Context, w io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return true
	case "sair", "exit":
		return false
	}

	if h.Commands != nil {
		var userID string
		if h.Identity != nil {
			userID, _ = h.Identity.UserID(ctx)
		}
		if reply, ok := h.Commands.Execute(ctx, userID, line); ok {
			fmt.Fprintln(w, ui.AnswerStyle.Render(conv.StripBold(reply)))
			return true
		}
	}

	res := h.Resolver.Resolve(ctx, resolver.Request{
		Question: line,
		Identity: h.Identity,
		Platform: core.PlatformCLI,
	})

	if !res.UsedAPI {
		log.FromCtx(ctx).Debug().Msg("answer returned without a successful completion")
		fmt.Fprintln(w, ui.WarnStyle.Render(res.Answer))
		return true
	}

	fmt.Fprintln(w, ui.AnswerStyle.Render(res.Answer))
	if res.WebSearchUsed {
		fmt.Fprintln(w, ui.BadgeStyle.Render("(resposta com pesquisa na web)"))
	}
	return true
}
