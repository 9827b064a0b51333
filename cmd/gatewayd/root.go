package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gatewayd <subcommand>",
	Short: "REST gateway over a document store, a cache and a message broker",
	Long: `gatewayd exposes a uniform REST surface over MongoDB, Redis and RabbitMQ,
degrading gracefully when any subset of them is unreachable`,
	Run: nil,
}

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringP("config-file", "c", "", "Path to the config file (eg ./config.yaml) [Optional]")
}
