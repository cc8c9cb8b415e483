package main

import (
	"fmt"

	"github.com/RajaFawad1/aveenixx/internal/classify"
	"github.com/RajaFawad1/aveenixx/internal/cli"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		name               string
		description        string
		brand              string
		platform           string
		platformCategories []string
		tags               []string
		price              float64
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single product",
		Long: `Run the hybrid classification engine over one product's attributes and
print the ranked result with its explanation trail.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			engine := classify.NewEngine(store, classify.DefaultRuleSet())
			result := engine.Classify(ctx, classify.ProductInput{
				Name:               name,
				Description:        description,
				Brand:              brand,
				Platform:           platform,
				PlatformCategories: platformCategories,
				Tags:               tags,
				Price:              price,
			})

			fmt.Println(cli.TitleStyle.Render("Classification"))
			fmt.Printf("%s %s (%.0f%% confidence)\n",
				cli.BoldStyle.Render("Category:"),
				result.Primary.Name,
				result.Primary.Confidence)

			if result.RequiresReview {
				fmt.Println(cli.WarningStyle.Render("Needs human review before the assignment is trusted."))
			} else {
				fmt.Println(cli.SuccessStyle.Render("Confidence is high enough to auto-accept."))
			}

			if len(result.Alternatives) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nAlternatives:"))
				for _, alt := range result.Alternatives {
					fmt.Printf("  %s (%.0f%%)\n", alt.Name, alt.Confidence)
				}
			}

			if len(result.MatchingRules) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nWhy:"))
				for _, reason := range result.MatchingRules {
					fmt.Println(cli.SubtleStyle.Render("  - " + reason))
				}
			}

			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("\nProcessed in %dms", result.ProcessingTimeMs)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringVar(&brand, "brand", "", "product brand")
	cmd.Flags().StringVar(&platform, "platform", classify.DefaultPlatform, "source platform of the category strings")
	cmd.Flags().StringSliceVar(&platformCategories, "platform-category", nil, "raw platform category (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "product tag (repeatable)")
	cmd.Flags().Float64Var(&price, "price", 0, "product price")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
