package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/sandevgo/advogado/internal/transport/cli"
	"github.com/sandevgo/advogado/pkg/srv"
	"github.com/spf13/cobra"
)

var (
	askUser string
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [pergunta]",
	Short: "Answer a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		appCfg := loadConfig(ctx)
		p := NewPipeline(ctx, appCfg)
		defer shutdownNow(ctx, p.Cleanups)

		identity := cliIdentity(askUser)
		question := strings.Join(args, " ")

		if !askJSON {
			h := &cli.Handler{Resolver: p.Resolver, Commands: p.Commands, Identity: identity}
			h.Answer(ctx, cmd.OutOrStdout(), question)
			return nil
		}

		result := p.Resolver.Resolve(ctx, resolver.Request{
			Question: question,
			Identity: identity,
			Platform: core.PlatformCLI,
		})
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode answer: %w", err)
		}
		if !result.UsedAPI {
			return errors.New("question was not answered by the model")
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askUser, "user", "u", "", "user id for conversation history (default: new anonymous user)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the full result as JSON")
	rootCmd.AddCommand(askCmd)
}

// cliIdentity keeps history across runs only when the caller names the user.
func cliIdentity(user string) core.Identity {
	user = strings.TrimSpace(user)
	if user == "" {
		user = newUUID()
	}
	return core.StaticIdentity("cli_" + user)
}

func shutdownNow(ctx context.Context, services []srv.Service) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	for i := len(services) - 1; i >= 0; i-- {
		_ = services[i].Shutdown(ctx)
	}
}
