package main

import (
	"fmt"

	"github.com/GoSim-25-26J-441/scm-sim-core/config"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/bootstrap"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (equivalent to the api binary)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger, err := logging.New()
			if err != nil {
				return fmt.Errorf("logging: %w", err)
			}
			return bootstrap.Serve(cfg, logger)
		},
	}
}
