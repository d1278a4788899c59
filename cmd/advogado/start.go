package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/advogado/pkg/log"
	"github.com/sandevgo/advogado/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the web, WhatsApp and Telegram services",
	Long:  `Initializes storage and the answer pipeline, then serves every enabled transport until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting advogado")

		appCfg := loadConfig(ctx)
		services := NewServices(ctx, appCfg)

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("advogado has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
