package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/RajaFawad1/aveenixx/internal/cli"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect persisted classification rules",
	}

	cmd.AddCommand(listRulesCmd())
	cmd.AddCommand(ruleStatsCmd())

	return cmd
}

func listRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active classification rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			rules, err := store.GetClassificationRules(ctx)
			if err != nil {
				return fmt.Errorf("failed to get rules: %w", err)
			}

			if len(rules) == 0 {
				fmt.Println(cli.InfoStyle.Render("No rules found. Run 'aveenix seed-mappings' to seed the defaults."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, cli.BoldStyle.Render("Pattern")+"\t"+cli.BoldStyle.Render("Type")+"\t"+cli.BoldStyle.Render("Category")+"\t"+cli.BoldStyle.Render("Priority")+"\t"+cli.BoldStyle.Render("Confidence"))
			for _, rule := range rules {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f%%\n",
					rule.Pattern, rule.MatchType, rule.CategoryID, rule.Priority, rule.Confidence)
			}

			return nil
		},
	}
}

func ruleStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show rule store statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.GetRuleStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get rule stats: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Rule store"))
			fmt.Printf("  Classification rules:     %d\n", stats.TotalRules)
			fmt.Printf("  Platform mappings:        %d\n", stats.TotalMappings)
			fmt.Printf("  Categories with mappings: %d\n", stats.CategoriesWithMappings)
			fmt.Printf("  Average rule confidence:  %.1f%%\n", stats.AverageConfidence)

			return nil
		},
	}
}
