package commands

import (
	"github.com/spf13/cobra"

	"github.com/insightdelivered/ledger-converter/internal/api"
	"github.com/insightdelivered/ledger-converter/internal/logger"
)

func newServeCommand() *cobra.Command {
	var addr string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}

			log := logger.New()
			log.Info().Str("addr", cfg.ListenAddr).Msg("starting conversion API")

			return api.NewApp().Listen(cfg.ListenAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default \":8080\")")
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")

	return cmd
}
