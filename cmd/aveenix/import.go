package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RajaFawad1/aveenixx/internal/classify"
	"github.com/RajaFawad1/aveenixx/internal/cli"
	"github.com/RajaFawad1/aveenixx/internal/model"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// feedProduct is one entry of a JSON product feed file.
type feedProduct struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Brand              string   `json:"brand"`
	Platform           string   `json:"platform"`
	PlatformCategories []string `json:"platform_categories"`
	Tags               []string `json:"tags"`
	Price              float64  `json:"price"`
}

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <feed.json>",
		Short: "Classify and persist a product feed",
		Long: `Read a JSON product feed, classify every product with the hybrid engine,
and persist the products together with their classification outcome. Products
whose confidence falls below the review threshold are flagged for human
confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			feed, err := readFeed(args[0])
			if err != nil {
				return err
			}
			if len(feed) == 0 {
				fmt.Println(cli.InfoStyle.Render("Feed is empty, nothing to do."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			engine := classify.NewEngine(store, classify.DefaultRuleSet())

			bar := progressbar.NewOptions(len(feed),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Classifying products..."))

			products := make([]model.Product, 0, len(feed))
			needReview := 0

			for _, item := range feed {
				result := engine.Classify(ctx, classify.ProductInput{
					Name:               item.Name,
					Description:        item.Description,
					Brand:              item.Brand,
					Platform:           item.Platform,
					PlatformCategories: item.PlatformCategories,
					Tags:               item.Tags,
					Price:              item.Price,
				})

				id := item.ID
				if id == "" {
					id = uuid.NewString()
				}

				source := model.SourceHybrid
				if result.Primary.Confidence == 0 {
					source = model.SourceFallback
				}
				if result.RequiresReview {
					needReview++
				}

				products = append(products, model.Product{
					ID:                 id,
					Name:               item.Name,
					Description:        item.Description,
					Brand:              item.Brand,
					Price:              item.Price,
					PlatformCategories: item.PlatformCategories,
					Tags:               item.Tags,
					CategoryID:         result.Primary.ID,
					CategoryConfidence: result.Primary.Confidence,
					Source:             source,
					RequiresReview:     result.RequiresReview,
				})

				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			if !dryRun {
				if err := store.SaveProducts(ctx, products); err != nil {
					return fmt.Errorf("failed to save products: %w", err)
				}
			}

			fmt.Println(cli.TitleStyle.Render("Import summary"))
			fmt.Printf("  Products classified: %d\n", len(products))
			if needReview > 0 {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  Queued for review:   %d", needReview)))
			} else {
				fmt.Println(cli.SuccessStyle.Render("  Queued for review:   0"))
			}
			if dryRun {
				fmt.Println(cli.SubtleStyle.Render("  Dry run: nothing persisted."))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify without persisting")

	return cmd
}

func readFeed(path string) ([]feedProduct, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied feed path
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var feed []feedProduct
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse feed file: %w", err)
	}

	for i, item := range feed {
		if item.Name == "" {
			return nil, fmt.Errorf("feed entry %d: missing name", i)
		}
	}

	return feed, nil
}
