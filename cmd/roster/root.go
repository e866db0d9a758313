package main

import (
	"fmt"
	"os"
	"route-roster-service/internal/config"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "roster",
	Short:         "Vehicle route rosters, inspection log and sign ledger",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	def := os.Getenv("CONFIG_PATH")
	if def == "" {
		def = "config.yaml"
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", def, "configuration file")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
