package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [path]",
		Short: "Validate a catalog file and print entry counts per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			path := cfg.CatalogPath
			if len(args) == 1 {
				path = args[0]
			}

			catalog, err := repository.NewCatalogRepository(path)
			if err != nil {
				return fmt.Errorf("load catalog %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d entries\n", path, len(catalog.All()))
			for _, c := range entities.Categories {
				fmt.Fprintf(out, "  %-13s %d\n", c, len(catalog.ByCategory(c)))
			}
			return nil
		},
	}
}
