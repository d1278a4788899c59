package main

import (
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/sandevgo/advogado/internal/transport/cli"
	"github.com/sandevgo/advogado/pkg/log"
	"github.com/spf13/cobra"
)

var chatUser string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		appCfg := loadConfig(ctx)
		p := NewPipeline(ctx, appCfg)
		defer shutdownNow(ctx, p.Cleanups)

		repl, err := cli.NewReadLine(&cli.Handler{
			Resolver: p.Resolver,
			Commands: p.Commands,
			Identity: cliIdentity(chatUser),
		}, appCfg)
		if err != nil {
			return err
		}
		defer repl.Shutdown(ctx)

		if err := repl.Start(ctx); err != nil && ctx.Err() == nil {
			log.FromCtx(ctx).Error().Err(err).Msg("chat session ended with error")
			return err
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatUser, "user", "u", "", "user id for conversation history (default: new anonymous user)")
	rootCmd.AddCommand(chatCmd)
}

var newUUID = func() string {
	return uuid.NewString()
}
