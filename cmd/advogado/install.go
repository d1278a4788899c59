package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/advogado/internal/config"
	"github.com/sandevgo/advogado/internal/service/installer"
	"github.com/sandevgo/advogado/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Configure Advogado Virtual interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		runtimePath := config.GetRuntimePath()
		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		if err := godotenv.Load(appCfg.GetEnvPath()); err != nil {
			logger.Warn().Err(err).Str("path", appCfg.GetEnvPath()).Msg("failed to load .env file")
		}

		logger.Info().Str("path", runtimePath).Msg("initialized runtime directory")
		logger.Info().Msg("Installation complete! You can now run 'advogado start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
