package main

import (
	"github.com/Carmen-Shannon/oxy-orrery/internal/app"
	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
	"github.com/spf13/cobra"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the configured bodies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return app.PrintBodies(cmd.OutOrStdout(), cfg.Bodies)
	},
}

func init() {
	rootCmd.AddCommand(bodiesCmd)
}
