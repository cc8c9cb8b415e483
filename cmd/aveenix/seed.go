package main

import (
	"fmt"

	"github.com/RajaFawad1/aveenixx/internal/classify"
	"github.com/RajaFawad1/aveenixx/internal/cli"
	"github.com/spf13/cobra"
)

func seedMappingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-mappings",
		Short: "Seed hybrid classification rules and platform mappings",
		Long: `Materialize the built-in hybrid rule table into persisted classification
rules and platform category mappings. Safe to run repeatedly: rows that
already exist are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			seeder := classify.NewSeeder(store, classify.DefaultRuleSet())
			summary, err := seeder.Seed(ctx)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Hybrid mapping seed"))
			fmt.Printf("  Rules created:      %d\n", summary.RulesCreated)
			fmt.Printf("  Mappings created:   %d\n", summary.MappingsCreated)
			fmt.Printf("  Duplicates skipped: %d\n", summary.DuplicatesSkipped)
			if summary.SkippedRules > 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("  Rules without a matching category: %d", summary.SkippedRules)))
			}
			if summary.Failed > 0 {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  Failed creates: %d (see logs)", summary.Failed)))
			}

			fmt.Println(cli.SuccessStyle.Render("Done."))
			return nil
		},
	}
}
