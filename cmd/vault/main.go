package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/config"
	"github.com/aliskhannn/knowledge-vault-bot/internal/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "vault",
	Short:         "Knowledge vault: reference entries, streaks and spaced repetition flashcards",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the config file (default ./config/config.yaml)")
	rootCmd.AddCommand(newBotCmd(), newCatalogCmd())
}

// setup loads the configuration and the logger shared by all commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
