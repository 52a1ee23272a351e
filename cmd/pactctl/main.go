// Command pactctl counts graph homomorphisms and subgraph embeddings via
// hypertree decomposition and relational plan execution.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quotientgraph/pact/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "pactctl",
	Short:         "pactctl counts graph homomorphisms and subgraph embeddings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a pact config file (yaml/json/toml)")
	rootCmd.AddCommand(countCmd, subcountCmd, decomposeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pactctl:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
