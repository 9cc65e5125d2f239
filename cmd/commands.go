package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/affiliatekit/amazonapi/amazon"
	"github.com/affiliatekit/amazonapi/filter"
)

var (
	flagCondition string
	flagCurrency  string
	flagLanguage  string
	flagResources []string

	flagKeywords    string
	flagActor       string
	flagArtist      string
	flagAuthor      string
	flagBrand       string
	flagTitle       string
	flagBrowseNode  string
	flagSearchIndex string
	flagSortBy      string
	flagCount       int
	flagPage        int
	flagFilter      string
)

// getItemsCmd fetches item detail for one or more ASINs or product URLs.
var getItemsCmd = &cobra.Command{
	Use:   "get-items <asin|url> [asin|url...]",
	Short: "Fetch item detail for one or more ASINs or product URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGetItems,
}

// searchCmd searches the catalog.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog",
	RunE:  runSearch,
}

// variationsCmd fetches the variation family of an ASIN.
var variationsCmd = &cobra.Command{
	Use:   "variations <asin|url>",
	Short: "Fetch the variation family of an ASIN",
	Args:  cobra.ExactArgs(1),
	RunE:  runVariations,
}

// browseNodesCmd fetches browse node metadata.
var browseNodesCmd = &cobra.Command{
	Use:   "browse-nodes <node-id> [node-id...]",
	Short: "Fetch browse node metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBrowseNodes,
}

func init() {
	for _, c := range []*cobra.Command{getItemsCmd, searchCmd, variationsCmd} {
		c.Flags().StringVar(&flagCondition, "condition", "", "offer condition filter (New, Used, ...)")
		c.Flags().StringVar(&flagCurrency, "currency", "", "currency of preference (ISO 4217)")
		c.Flags().StringVar(&flagLanguage, "language", "", "language of preference (e.g. en_US)")
		c.Flags().StringSliceVar(&flagResources, "resource", nil, "resource selectors (default: all)")
	}

	searchCmd.Flags().StringVarP(&flagKeywords, "keywords", "k", "", "search keywords")
	searchCmd.Flags().StringVar(&flagActor, "actor", "", "actor name")
	searchCmd.Flags().StringVar(&flagArtist, "artist", "", "artist name")
	searchCmd.Flags().StringVar(&flagAuthor, "author", "", "author name")
	searchCmd.Flags().StringVar(&flagBrand, "brand", "", "brand name")
	searchCmd.Flags().StringVar(&flagTitle, "title", "", "item title")
	searchCmd.Flags().StringVar(&flagBrowseNode, "browse-node", "", "browse node id")
	searchCmd.Flags().StringVar(&flagSearchIndex, "search-index", "", "search index (e.g. Electronics)")
	searchCmd.Flags().StringVar(&flagSortBy, "sort", "", "sort order")
	searchCmd.Flags().IntVar(&flagCount, "count", 0, "items per page (1-10)")
	searchCmd.Flags().IntVar(&flagPage, "page", 0, "result page (1-10)")
	searchCmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "filter expression applied to results")

	variationsCmd.Flags().IntVar(&flagCount, "count", 0, "variations per page (1-10)")
	variationsCmd.Flags().IntVar(&flagPage, "page", 0, "variation page (1-10)")

	browseNodesCmd.Flags().StringVar(&flagLanguage, "language", "", "language of preference (e.g. en_US)")
}

func runGetItems(cmd *cobra.Command, args []string) error {
	resp, err := client.GetItems(context.Background(), &amazon.GetItemsRequest{
		ItemIDs:               args,
		Condition:             amazon.Condition(flagCondition),
		CurrencyOfPreference:  flagCurrency,
		LanguagesOfPreference: languages(),
		Resources:             flagResources,
	})
	if err != nil {
		return err
	}
	if rawJSON(cmd) {
		return printJSON(resp)
	}
	printItems(resp.ItemsResult.Items)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	resp, err := client.SearchItems(context.Background(), &amazon.SearchItemsRequest{
		Keywords:              flagKeywords,
		Actor:                 flagActor,
		Artist:                flagArtist,
		Author:                flagAuthor,
		Brand:                 flagBrand,
		Title:                 flagTitle,
		BrowseNodeID:          flagBrowseNode,
		SearchIndex:           flagSearchIndex,
		SortBy:                flagSortBy,
		ItemCount:             flagCount,
		ItemPage:              flagPage,
		Condition:             amazon.Condition(flagCondition),
		CurrencyOfPreference:  flagCurrency,
		LanguagesOfPreference: languages(),
		Resources:             flagResources,
	})
	if err != nil {
		return err
	}

	items := resp.SearchResult.Items
	if flagFilter != "" {
		f, err := filter.Compile(flagFilter)
		if err != nil {
			return err
		}
		items, err = f.Apply(items)
		if err != nil {
			return err
		}
		logger.Info().
			Str("filter", f.Expression()).
			Int("matched", len(items)).
			Msg("Applied result filter")
	}

	if rawJSON(cmd) {
		return printJSON(resp)
	}
	if resp.SearchResult.TotalResultCount != nil {
		fmt.Printf("Total results: %d\n", *resp.SearchResult.TotalResultCount)
	}
	printItems(items)
	return nil
}

func runVariations(cmd *cobra.Command, args []string) error {
	resp, err := client.GetVariations(context.Background(), &amazon.GetVariationsRequest{
		ASIN:                  args[0],
		VariationCount:        flagCount,
		VariationPage:         flagPage,
		Condition:             amazon.Condition(flagCondition),
		CurrencyOfPreference:  flagCurrency,
		LanguagesOfPreference: languages(),
		Resources:             flagResources,
	})
	if err != nil {
		return err
	}
	if rawJSON(cmd) {
		return printJSON(resp)
	}

	result := resp.VariationsResult
	if result.VariationSummary != nil {
		for _, dim := range result.VariationSummary.VariationDimensions {
			if dim.Name != nil {
				fmt.Printf("Dimension %s: %s\n", *dim.Name, strings.Join(dim.Values, ", "))
			}
		}
	}
	printItems(result.Items)
	return nil
}

func runBrowseNodes(cmd *cobra.Command, args []string) error {
	resp, err := client.GetBrowseNodes(context.Background(), &amazon.GetBrowseNodesRequest{
		BrowseNodeIDs:         args,
		LanguagesOfPreference: languages(),
	})
	if err != nil {
		return err
	}
	if rawJSON(cmd) {
		return printJSON(resp)
	}

	for _, node := range resp.BrowseNodesResult.BrowseNodes {
		name := ""
		if node.DisplayName != nil {
			name = *node.DisplayName
		}
		id := ""
		if node.ID != nil {
			id = *node.ID
		}
		fmt.Printf("• %s (%s)\n", name, id)
		for _, child := range node.Children {
			if child.DisplayName != nil && child.ID != nil {
				fmt.Printf("    %s (%s)\n", *child.DisplayName, *child.ID)
			}
		}
	}
	return nil
}

func languages() []string {
	if flagLanguage == "" {
		return nil
	}
	return []string{flagLanguage}
}

func rawJSON(cmd *cobra.Command) bool {
	raw, _ := cmd.Flags().GetBool("json")
	if !raw {
		raw, _ = cmd.Root().PersistentFlags().GetBool("json")
	}
	return raw
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItems(items []amazon.Item) {
	if len(items) == 0 {
		fmt.Println("No items.")
		return
	}

	fmt.Printf("\nFound %d items:\n", len(items))
	fmt.Println(strings.Repeat("-", 80))
	for _, item := range items {
		title := "(no title)"
		if item.ItemInfo != nil && item.ItemInfo.Title != nil && item.ItemInfo.Title.DisplayValue != nil {
			title = *item.ItemInfo.Title.DisplayValue
		}
		fmt.Printf("• %s  %s", item.ASIN, title)
		if item.Offers != nil && len(item.Offers.Listings) > 0 {
			if p := item.Offers.Listings[0].Price; p != nil && p.DisplayAmount != nil {
				fmt.Printf("  %s", *p.DisplayAmount)
			}
		}
		fmt.Println()
		if item.DetailPageURL != nil {
			fmt.Printf("  %s\n", *item.DetailPageURL)
		}
	}
}
